package anchors

import (
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
)

// LengthFunc returns the EMU length of a 1-based row or column index.
type LengthFunc func(index int) int64

// LengthTable maps "indices 1..i" to their cumulative EMU length. It is
// extended lazily as positions further down the sheet are requested.
type LengthTable struct {
	limit  int
	length LengthFunc
	// cum[i] is the total length of indices 1..i; cum[0] is 0.
	cum []int64
}

// NewLengthTable returns an empty table covering at most limit indices.
func NewLengthTable(limit int, length LengthFunc) *LengthTable {
	return &LengthTable{limit: limit, length: length, cum: []int64{0}}
}

// extend grows the table to cover index i.
func (t *LengthTable) extend(i int) {
	for n := len(t.cum) - 1; n < i && n < t.limit; n++ {
		t.cum = append(t.cum, t.cum[n]+t.length(n+1))
	}
}

// At returns the cumulative length of indices 1..i.
func (t *LengthTable) At(i int) int64 {
	if i <= 0 {
		return 0
	}
	if i > t.limit {
		i = t.limit
	}
	t.extend(i)
	return t.cum[i]
}

// Position converts a 0-based marker id and offset into an absolute length.
func (t *LengthTable) Position(id int, offset int64) int64 {
	return t.At(id) + offset
}

// Locate converts an absolute length back into a 0-based id and an offset,
// scanning from the highest covered index downward.
func (t *LengthTable) Locate(pos int64) (int, int64) {
	if pos <= 0 {
		return 0, 0
	}
	for n := len(t.cum) - 1; n < t.limit && t.cum[n] <= pos; n = len(t.cum) - 1 {
		t.extend(n + 1)
	}
	for i := len(t.cum) - 1; i >= 0; i-- {
		if t.cum[i] <= pos {
			if i >= t.limit {
				i = t.limit - 1
			}
			return i, pos - t.cum[i]
		}
	}
	return 0, pos
}

// Sizer computes row and column lengths for a worksheet.
type Sizer struct {
	Sheet *models.Worksheet
	// DefaultRowHeight is in points and DefaultColWidth in character units;
	// the worksheet's own defaults win when set.
	DefaultRowHeight float64
	DefaultColWidth  float64
	MaxDigitWidth    float64
}

// Length returns the EMU length of index along axis as the sheet stands now.
func (s Sizer) Length(axis models.Axis, index int) int64 {
	if axis == models.AxisColumn {
		width := s.DefaultColWidth
		if s.Sheet.DefaultColWidth > 0 {
			width = s.Sheet.DefaultColWidth
		}
		if c, ok := s.Sheet.Columns[index]; ok && c != nil {
			if c.Hidden {
				return 0
			}
			if c.Width > 0 {
				width = c.Width
			}
		}
		return ColumnWidthToEMU(width, s.MaxDigitWidth)
	}
	height := s.DefaultRowHeight
	if s.Sheet.DefaultRowHeight > 0 {
		height = s.Sheet.DefaultRowHeight
	}
	if r, ok := s.Sheet.Rows[index]; ok && r != nil {
		if r.Hidden {
			return 0
		}
		if r.Height > 0 {
			height = r.Height
		}
	}
	return PointsToEMU(height)
}

// Table returns the length table for the sheet in its current layout.
func (s Sizer) Table(axis models.Axis, limit int) *LengthTable {
	return NewLengthTable(limit, func(i int) int64 { return s.Length(axis, i) })
}

// TableAfterDelete returns the length table the sheet will have once
// count indices starting at pivot are deleted.
func (s Sizer) TableAfterDelete(axis models.Axis, limit, pivot, count int) *LengthTable {
	return NewLengthTable(limit, func(i int) int64 {
		if i >= pivot {
			i += count
		}
		if i > limit {
			// indices shifted in from past the end have the default length
			return s.defaultLength(axis)
		}
		return s.Length(axis, i)
	})
}

func (s Sizer) defaultLength(axis models.Axis) int64 {
	if axis == models.AxisColumn {
		width := s.DefaultColWidth
		if s.Sheet.DefaultColWidth > 0 {
			width = s.Sheet.DefaultColWidth
		}
		return ColumnWidthToEMU(width, s.MaxDigitWidth)
	}
	height := s.DefaultRowHeight
	if s.Sheet.DefaultRowHeight > 0 {
		height = s.Sheet.DefaultRowHeight
	}
	return PointsToEMU(height)
}
