package models

import "strings"

// SheetRange is a rectangle on a named sheet.
type SheetRange struct {
	Sheet string `json:"sheet"`
	Ref   Rect   `json:"ref"`
}

// OnSheet reports whether the range lives on the named sheet.
func (s *SheetRange) OnSheet(name string) bool {
	return s != nil && strings.EqualFold(s.Sheet, name)
}

// Sparkline is a miniature chart drawn in one cell.
type Sparkline struct {
	// Location is the host cell on the sheet owning the group.
	Location CellPoint `json:"location"`
	// Source is nil once its data range has been deleted.
	Source *SheetRange `json:"source,omitempty"`
}

// SparklineGroup is a set of sparklines sharing axis settings.
type SparklineGroup struct {
	Type string `json:"type,omitempty"`
	// DateAxis is an optional date range shared by the group.
	DateAxis   *SheetRange `json:"date_axis,omitempty"`
	Sparklines []Sparkline `json:"sparklines"`
}
