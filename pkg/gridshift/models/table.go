package models

import (
	"strconv"
	"strings"
)

// TableColumn is one column of a table.
type TableColumn struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Table is a structured range with its own header and totals rows.
type Table struct {
	// ID is unique across the workbook.
	ID uint `json:"id"`
	// Name is the internal name.
	Name string `json:"name"`
	// DisplayName is unique across the workbook, compared case-insensitively.
	DisplayName string `json:"display_name"`
	// Ref is the full table range including header and totals rows.
	Ref            Rect `json:"ref"`
	HeaderRowCount int  `json:"header_row_count"`
	TotalsRowCount int  `json:"totals_row_count,omitempty"`
	TotalsRowShown bool `json:"totals_row_shown,omitempty"`
	// AutoFilter is nil when the table has no filter buttons.
	AutoFilter *AutoFilter   `json:"auto_filter,omitempty"`
	Columns    []TableColumn `json:"columns"`
	StyleName  string        `json:"style,omitempty"`
}

// UniqueColumnName returns the first "ColumnN" not used by the table's
// columns or by pending, compared case-insensitively.
func (t *Table) UniqueColumnName(pending []TableColumn) string {
	taken := make(map[string]struct{}, len(t.Columns)+len(pending))
	for _, c := range t.Columns {
		taken[strings.ToLower(c.Name)] = struct{}{}
	}
	for _, c := range pending {
		taken[strings.ToLower(c.Name)] = struct{}{}
	}
	for n := 1; ; n++ {
		name := "Column" + strconv.Itoa(n)
		if _, ok := taken[strings.ToLower(name)]; !ok {
			return name
		}
	}
}

// HasHeader reports whether the table shows a header row.
func (t *Table) HasHeader() bool {
	return t.HeaderRowCount > 0
}

// HeaderRows returns the header row span, ok is false without a header.
func (t *Table) HeaderRows() (start, end int, ok bool) {
	if t.HeaderRowCount <= 0 {
		return 0, 0, false
	}
	return t.Ref.StartRow, t.Ref.StartRow + t.HeaderRowCount - 1, true
}

// TotalsRows returns the totals row span, ok is false without totals.
func (t *Table) TotalsRows() (start, end int, ok bool) {
	if t.TotalsRowCount <= 0 {
		return 0, 0, false
	}
	return t.Ref.EndRow - t.TotalsRowCount + 1, t.Ref.EndRow, true
}

// BodyRows returns the data row span between header and totals.
func (t *Table) BodyRows() (start, end int) {
	return t.Ref.StartRow + t.HeaderRowCount, t.Ref.EndRow - t.TotalsRowCount
}

// NextColumnID returns an id not yet used by any column.
func (t *Table) NextColumnID() uint {
	var max uint
	for _, c := range t.Columns {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
