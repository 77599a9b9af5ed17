// Package refs rewrites cell and range references embedded in formula text.
package refs

import (
	"strconv"
	"strings"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/xuri/excelize/v2"
)

// BrokenRef is written in place of a reference whose target no longer exists.
const BrokenRef = "#REF!"

// refKind is the shape of a parsed reference.
type refKind int

const (
	kindCell    refKind = iota // A1 or A1:B2
	kindColumns                // A:C
	kindRows                   // 1:3
)

// part is one side of a reference; zero values mean the component is absent.
type part struct {
	col    int
	colAbs bool
	row    int
	rowAbs bool
}

// Reference is a parsed single cell, range, whole-column or whole-row reference.
type Reference struct {
	// Prefix is the sheet qualifier including "!", quoted when the name needs
	// it, and empty when unqualified.
	Prefix string
	// Sheet is the unquoted sheet name from Prefix.
	Sheet string
	kind  refKind
	start part
	end   part
}

// ParseReference parses an operand such as "Sheet1!$A$1:B2". ok is false for
// names, external references and anything that is not a grid reference.
func ParseReference(text string) (Reference, bool) {
	var ref Reference
	body := text
	if i := sheetSeparator(text); i >= 0 {
		ref.Prefix = text[:i+1]
		body = text[i+1:]
		sheet := text[:i]
		if strings.HasPrefix(sheet, "[") || strings.Contains(sheet, "]") {
			return ref, false
		}
		if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		} else if strings.Contains(sheet, ":") {
			// 3-D references span several sheets
			return ref, false
		} else {
			ref.Prefix = quoteName(sheet) + "!"
		}
		ref.Sheet = sheet
	}
	if body == "" {
		return ref, false
	}

	first, second, isRange := strings.Cut(body, ":")
	if strings.Contains(second, ":") {
		return ref, false
	}
	a, ok := parsePart(first)
	if !ok {
		return ref, false
	}
	if !isRange {
		if a.col == 0 || a.row == 0 {
			return ref, false
		}
		ref.kind, ref.start, ref.end = kindCell, a, a
		return ref, true
	}
	b, ok := parsePart(second)
	if !ok {
		return ref, false
	}
	switch {
	case a.col > 0 && a.row > 0 && b.col > 0 && b.row > 0:
		ref.kind = kindCell
	case a.row == 0 && b.row == 0:
		ref.kind = kindColumns
	case a.col == 0 && b.col == 0:
		ref.kind = kindRows
	default:
		return ref, false
	}
	ref.start, ref.end = a, b
	return ref, true
}

// sheetSeparator returns the index of the "!" ending the sheet qualifier, or -1.
func sheetSeparator(text string) int {
	inQuote := false
	for i := len(text) - 1; i >= 0; i-- {
		switch text[i] {
		case '\'':
			inQuote = !inQuote
		case '!':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}

// quoteName returns a sheet name as it must appear in a qualifier, wrapped
// in single quotes with inner quotes doubled when it is not a plain name.
func quoteName(sheet string) string {
	if !needsQuotes(sheet) {
		return sheet
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func needsQuotes(sheet string) bool {
	if sheet == "" {
		return false
	}
	if sheet[0] >= '0' && sheet[0] <= '9' {
		return true
	}
	for i := 0; i < len(sheet); i++ {
		c := sheet[i]
		if !isLetter(c) && (c < '0' || c > '9') && c != '_' && c != '.' {
			return true
		}
	}
	// names such as "A1" or "R1C1" read as references
	if p, ok := parsePart(sheet); ok && p.col > 0 && p.row > 0 {
		return true
	}
	upper := strings.ToUpper(sheet)
	if strings.HasPrefix(upper, "R") && strings.ContainsAny(upper, "0123456789") &&
		strings.Trim(upper, "RC0123456789") == "" {
		return true
	}
	return false
}

// parsePart parses "$A$1", "A", "$3" and the like.
func parsePart(s string) (part, bool) {
	var p part
	i := 0
	if i < len(s) && s[i] == '$' {
		p.colAbs = true
		i++
	}
	letters := i
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i > letters {
		if i-letters > 3 {
			return p, false
		}
		col, err := excelize.ColumnNameToNumber(s[letters:i])
		if err != nil {
			return p, false
		}
		p.col = col
	} else if p.colAbs {
		// "$3" is an absolute row
		p.colAbs = false
		p.rowAbs = true
	}
	if i < len(s) && s[i] == '$' {
		if p.col == 0 || p.rowAbs {
			return p, false
		}
		p.rowAbs = true
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i != len(s) {
		return p, false
	}
	if i > digits {
		row, err := strconv.Atoi(s[digits:i])
		if err != nil || row < 1 {
			return p, false
		}
		p.row = row
	} else if p.rowAbs && p.col > 0 {
		return p, false
	}
	if p.col == 0 && p.row == 0 {
		return p, false
	}
	return p, true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// OnSheet reports whether the reference points at sheet, resolving an
// unqualified reference to currentSheet.
func (r Reference) OnSheet(sheet, currentSheet string) bool {
	if r.Prefix == "" {
		return currentSheet != "" && strings.EqualFold(currentSheet, sheet)
	}
	return strings.EqualFold(r.Sheet, sheet)
}

// Rect returns the rectangle covered by the reference given the grid limits.
func (r Reference) Rect(maxRows, maxCols int) models.Rect {
	switch r.kind {
	case kindColumns:
		return models.NewRect(1, r.start.col, maxRows, r.end.col)
	case kindRows:
		return models.NewRect(r.start.row, 1, r.end.row, maxCols)
	default:
		return models.NewRect(r.start.row, r.start.col, r.end.row, r.end.col)
	}
}

// moves reports whether edits along axis change the reference.
func (r Reference) moves(axis models.Axis) bool {
	switch r.kind {
	case kindColumns:
		return axis == models.AxisColumn
	case kindRows:
		return axis == models.AxisRow
	default:
		return true
	}
}

// span returns the ordered bounds along axis.
func (r Reference) span(axis models.Axis) (int, int) {
	s, e := r.start.row, r.end.row
	if axis == models.AxisColumn {
		s, e = r.start.col, r.end.col
	}
	if e < s {
		s, e = e, s
	}
	return s, e
}

// withSpan replaces the bounds along axis, keeping the "$" markers.
func (r Reference) withSpan(axis models.Axis, s, e int) Reference {
	if axis == models.AxisColumn {
		if r.end.col < r.start.col {
			s, e = e, s
		}
		r.start.col, r.end.col = s, e
	} else {
		if r.end.row < r.start.row {
			s, e = e, s
		}
		r.start.row, r.end.row = s, e
	}
	return r
}

// String renders the reference back into A1 notation.
func (r Reference) String() string {
	start := r.start.format()
	if r.kind == kindCell && r.start == r.end {
		return r.Prefix + start
	}
	return r.Prefix + start + ":" + r.end.format()
}

// Broken renders the reference as a broken reference, keeping its sheet qualifier.
func (r Reference) Broken() string {
	return r.Prefix + BrokenRef
}

func (p part) format() string {
	var b strings.Builder
	if p.col > 0 {
		if p.colAbs {
			b.WriteByte('$')
		}
		name, _ := excelize.ColumnNumberToName(p.col)
		b.WriteString(name)
	}
	if p.row > 0 {
		if p.rowAbs {
			b.WriteByte('$')
		}
		b.WriteString(strconv.Itoa(p.row))
	}
	return b.String()
}
