// Package models defines the in-memory worksheet model edited by gridshift.
package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Axis selects rows or columns.
type Axis int

const (
	// AxisRow edits rows.
	AxisRow Axis = iota
	// AxisColumn edits columns.
	AxisColumn
)

// String returns "row" or "column".
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// Rect is an inclusive cell rectangle with 1-based bounds.
type Rect struct {
	// StartRow is the top row (1-based).
	StartRow int `json:"r1"`
	// StartCol is the left column (1-based).
	StartCol int `json:"c1"`
	// EndRow is the bottom row (1-based, inclusive).
	EndRow int `json:"r2"`
	// EndCol is the right column (1-based, inclusive).
	EndCol int `json:"c2"`
}

// NewRect builds a rectangle and normalizes the corner order.
func NewRect(startRow, startCol, endRow, endCol int) Rect {
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return Rect{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
}

// ParseRect parses an A1-style reference such as "B2:D4" or "$A$1".
func ParseRect(ref string) (Rect, error) {
	ref = stripDollar(ref)
	first, second := ref, ref
	for i := 0; i < len(ref); i++ {
		if ref[i] == ':' {
			first, second = ref[:i], ref[i+1:]
			break
		}
	}
	c1, r1, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return Rect{}, fmt.Errorf("parse range %q: %w", ref, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(second)
	if err != nil {
		return Rect{}, fmt.Errorf("parse range %q: %w", ref, err)
	}
	return NewRect(r1, c1, r2, c2), nil
}

func stripDollar(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// String renders the rectangle as "A1:B2", or "A1" for a single cell.
func (r Rect) String() string {
	start, err := excelize.CoordinatesToCellName(r.StartCol, r.StartRow)
	if err != nil {
		return "#REF!"
	}
	if r.StartRow == r.EndRow && r.StartCol == r.EndCol {
		return start
	}
	end, err := excelize.CoordinatesToCellName(r.EndCol, r.EndRow)
	if err != nil {
		return "#REF!"
	}
	return start + ":" + end
}

// Span returns the start and end of the rectangle along axis.
func (r Rect) Span(axis Axis) (int, int) {
	if axis == AxisColumn {
		return r.StartCol, r.EndCol
	}
	return r.StartRow, r.EndRow
}

// WithSpan returns a copy of r with the bounds along axis replaced.
func (r Rect) WithSpan(axis Axis, start, end int) Rect {
	if axis == AxisColumn {
		r.StartCol, r.EndCol = start, end
	} else {
		r.StartRow, r.EndRow = start, end
	}
	return r
}

// Width returns the number of columns covered.
func (r Rect) Width() int {
	return r.EndCol - r.StartCol + 1
}

// Height returns the number of rows covered.
func (r Rect) Height() int {
	return r.EndRow - r.StartRow + 1
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p CellPoint) bool {
	return p.Row >= r.StartRow && p.Row <= r.EndRow && p.Col >= r.StartCol && p.Col <= r.EndCol
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.StartRow <= o.EndRow && o.StartRow <= r.EndRow &&
		r.StartCol <= o.EndCol && o.StartCol <= r.EndCol
}

// Valid reports whether the bounds are ordered and inside the given limits.
func (r Rect) Valid(maxRows, maxCols int) bool {
	return r.StartRow >= 1 && r.StartCol >= 1 &&
		r.StartRow <= r.EndRow && r.StartCol <= r.EndCol &&
		r.EndRow <= maxRows && r.EndCol <= maxCols
}
