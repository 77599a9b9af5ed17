package models

import (
	"github.com/xuri/excelize/v2"
)

// CellPoint is a 1-based (row, column) coordinate ordered row-major.
type CellPoint struct {
	Row int
	Col int
}

// Pt is shorthand for CellPoint{Row: row, Col: col}.
func Pt(row, col int) CellPoint {
	return CellPoint{Row: row, Col: col}
}

// ParsePoint parses an A1-style cell name; "$" markers are ignored.
func ParsePoint(name string) (CellPoint, error) {
	col, row, err := excelize.CellNameToCoordinates(stripDollar(name))
	if err != nil {
		return CellPoint{}, err
	}
	return CellPoint{Row: row, Col: col}, nil
}

// Less orders points row first, then column.
func (p CellPoint) Less(o CellPoint) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Index returns the coordinate along axis.
func (p CellPoint) Index(axis Axis) int {
	if axis == AxisColumn {
		return p.Col
	}
	return p.Row
}

// WithIndex returns a copy of p with the coordinate along axis replaced.
func (p CellPoint) WithIndex(axis Axis, index int) CellPoint {
	if axis == AxisColumn {
		p.Col = index
	} else {
		p.Row = index
	}
	return p
}

// String renders the point as a cell name such as "B3".
func (p CellPoint) String() string {
	name, err := excelize.CoordinatesToCellName(p.Col, p.Row)
	if err != nil {
		return "#REF!"
	}
	return name
}

// MarshalText lets points be used as JSON object keys.
func (p CellPoint) MarshalText() ([]byte, error) {
	name, err := excelize.CoordinatesToCellName(p.Col, p.Row)
	if err != nil {
		return nil, err
	}
	return []byte(name), nil
}

// UnmarshalText parses a cell name produced by MarshalText.
func (p *CellPoint) UnmarshalText(text []byte) error {
	pt, err := ParsePoint(string(text))
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// CellType describes how a cell value is stored.
type CellType string

const (
	CellTypeUnset   CellType = ""
	CellTypeNumber  CellType = "n"
	CellTypeString  CellType = "s"
	CellTypeBool    CellType = "b"
	CellTypeError   CellType = "e"
	CellTypeDate    CellType = "d"
	CellTypeFormula CellType = "str"
)

// Cell holds the content of a single grid cell.
type Cell struct {
	// Value is the stored (or cached) value in its raw text form.
	Value string `json:"v,omitempty"`
	// Type is the value type.
	Type CellType `json:"t,omitempty"`
	// Formula is the formula text without the leading "=".
	Formula string `json:"f,omitempty"`
	// Style is the style index, 0 for the default style.
	Style int `json:"s,omitempty"`
}

// HasFormula reports whether the cell carries formula text.
func (c *Cell) HasFormula() bool {
	return c != nil && c.Formula != ""
}

// Comment is a note attached to a cell.
type Comment struct {
	Author string `json:"author,omitempty"`
	Text   string `json:"text"`
	// Width and Height are the note box size in points, 0 when unknown.
	Width  float64 `json:"w,omitempty"`
	Height float64 `json:"h,omitempty"`
}
