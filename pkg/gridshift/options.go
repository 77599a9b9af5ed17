// Package gridshift inserts, deletes, copies and cuts whole rows and columns
// of a worksheet while keeping every dependent structure consistent.
package gridshift

import (
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// DefaultRowHeight is the row height in points used when a sheet has none.
	DefaultRowHeight = 15.0
	// DefaultColumnWidth is the stored column width used when a sheet has none.
	DefaultColumnWidth = 9.140625
	// DefaultMaxDigitWidth is the maximum digit width in pixels of the default font.
	DefaultMaxDigitWidth = 7.0
)

// Options configures an Editor.
type Options struct {
	// MaxRows is the last valid row index (default excelize.TotalRows).
	MaxRows int
	// MaxColumns is the last valid column index (default excelize.MaxColumns).
	MaxColumns int
	// DefaultRowHeight is used for rows without an explicit height, in points.
	DefaultRowHeight float64
	// DefaultColumnWidth is used for columns without an explicit width.
	DefaultColumnWidth float64
	// MaxDigitWidth converts column widths to pixels.
	MaxDigitWidth float64
	// AdjustOtherSheets specifies whether formulas on other sheets that point
	// at the edited sheet are rewritten. If nil, defaults to true.
	AdjustOtherSheets *bool
	// Logger receives debug records of every edit. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default editor options.
func DefaultOptions() Options {
	return Options{
		MaxRows:            excelize.TotalRows,
		MaxColumns:         excelize.MaxColumns,
		DefaultRowHeight:   DefaultRowHeight,
		DefaultColumnWidth: DefaultColumnWidth,
		MaxDigitWidth:      DefaultMaxDigitWidth,
	}
}

// withDefaults fills zero values from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxRows <= 0 {
		o.MaxRows = d.MaxRows
	}
	if o.MaxColumns <= 0 {
		o.MaxColumns = d.MaxColumns
	}
	if o.DefaultRowHeight <= 0 {
		o.DefaultRowHeight = d.DefaultRowHeight
	}
	if o.DefaultColumnWidth <= 0 {
		o.DefaultColumnWidth = d.DefaultColumnWidth
	}
	if o.MaxDigitWidth <= 0 {
		o.MaxDigitWidth = d.MaxDigitWidth
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// ShouldAdjustOtherSheets returns whether formulas on other sheets are rewritten.
func (o Options) ShouldAdjustOtherSheets() bool {
	if o.AdjustOtherSheets != nil {
		return *o.AdjustOtherSheets
	}
	return true
}
