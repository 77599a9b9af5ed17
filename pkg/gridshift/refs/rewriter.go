package refs

import (
	"strings"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/xuri/efp"
)

// Edit describes a structural edit: Amount indices inserted (positive) or
// deleted (negative) at Pivot along Axis.
type Edit struct {
	Axis   models.Axis
	Pivot  int
	Amount int
}

// Rewriter adjusts references to one sheet inside formula text.
type Rewriter struct {
	// Sheet is the name of the edited sheet.
	Sheet   string
	MaxRows int
	MaxCols int
}

// NewRewriter returns a rewriter for references to sheet.
func NewRewriter(sheet string, maxRows, maxCols int) *Rewriter {
	return &Rewriter{Sheet: sheet, MaxRows: maxRows, MaxCols: maxCols}
}

func (rw *Rewriter) limit(axis models.Axis) int {
	if axis == models.AxisColumn {
		return rw.MaxCols
	}
	return rw.MaxRows
}

// Adjust rewrites every reference to the edited sheet in formula. Unqualified
// references resolve to currentSheet, which is empty for defined names.
func (rw *Rewriter) Adjust(formula, currentSheet string, e Edit) string {
	if e.Amount == 0 {
		return formula
	}
	return rewrite(formula, func(ref Reference) (string, bool) {
		if !ref.OnSheet(rw.Sheet, currentSheet) || !ref.moves(e.Axis) {
			return "", false
		}
		return rw.adjustReference(ref, e), true
	})
}

func (rw *Rewriter) adjustReference(ref Reference, e Edit) string {
	start, end := ref.span(e.Axis)
	limit := rw.limit(e.Axis)
	if e.Amount > 0 {
		if start >= e.Pivot && start+e.Amount > limit {
			return ref.Broken()
		}
		start, end = delta.Grow(e.Pivot, e.Amount, limit, start, end)
		return ref.withSpan(e.Axis, start, end).String()
	}
	count := -e.Amount
	givenEnd := e.Pivot - e.Amount - 1
	if delta.Classify(e.Pivot, givenEnd, start, end) == delta.Contained {
		return ref.Broken()
	}
	start, end = delta.Shrink(e.Pivot, givenEnd, count, start, end)
	return ref.withSpan(e.Axis, start, end).String()
}

// Translate shifts the relative parts of every reference by a fixed offset,
// as pasting a copied formula does. Absolute parts stay put and references
// leaving the grid become broken.
func (rw *Rewriter) Translate(formula string, rowOffset, colOffset int) string {
	if rowOffset == 0 && colOffset == 0 {
		return formula
	}
	return rewrite(formula, func(ref Reference) (string, bool) {
		moved := ref
		ok := true
		moved.start, ok = rw.translatePart(ref.start, rowOffset, colOffset, ok)
		moved.end, ok = rw.translatePart(ref.end, rowOffset, colOffset, ok)
		if !ok {
			return ref.Broken(), true
		}
		return moved.String(), true
	})
}

func (rw *Rewriter) translatePart(p part, rowOffset, colOffset int, ok bool) (part, bool) {
	if p.row > 0 && !p.rowAbs {
		p.row += rowOffset
		if p.row < 1 || p.row > rw.MaxRows {
			ok = false
		}
	}
	if p.col > 0 && !p.colAbs {
		p.col += colOffset
		if p.col < 1 || p.col > rw.MaxCols {
			ok = false
		}
	}
	return p, ok
}

// rewrite tokenizes formula and replaces each grid reference operand with the
// result of fn when fn reports a change. Everything else, including spacing
// and sheet quoting, is copied from the source text. Formulas the tokenizer
// cannot read are returned unchanged.
func rewrite(formula string, fn func(Reference) (string, bool)) string {
	if strings.TrimSpace(formula) == "" {
		return formula
	}
	prefix := ""
	body := formula
	if strings.HasPrefix(body, "=") {
		prefix, body = "=", body[1:]
	}

	ps := efp.ExcelParser()
	tokens := ps.Parse(body)
	if len(tokens) == 0 {
		return formula
	}

	var b strings.Builder
	pos := 0
	for _, token := range tokens {
		switch {
		case token.TType == efp.TokenTypeUnknown:
			return formula
		case token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeText:
			// skip string literals so their contents are never matched as references
			lit := `"` + strings.ReplaceAll(token.TValue, `"`, `""`) + `"`
			if at := strings.Index(body[pos:], lit); at >= 0 {
				end := pos + at + len(lit)
				b.WriteString(body[pos:end])
				pos = end
			}
		case token.TType == efp.TokenTypeOperand && token.TSubType == efp.TokenSubTypeRange:
			at, n := locate(body, pos, sourceForms(token.TValue))
			if at < 0 {
				return formula
			}
			src := body[at : at+n]
			b.WriteString(body[pos:at])
			pos = at + n
			if ref, ok := ParseReference(src); ok {
				if out, changed := fn(ref); changed {
					b.WriteString(out)
					continue
				}
			}
			b.WriteString(src)
		}
	}
	b.WriteString(body[pos:])
	return prefix + b.String()
}

// sourceForms lists the spellings an operand may have in the formula text.
// The tokenizer drops the quotes around sheet names and undoubles "''".
func sourceForms(operand string) []string {
	forms := []string{operand}
	if i := strings.LastIndex(operand, "!"); i > 0 {
		// quotes are optional around names that do not need them
		sheet := operand[:i]
		forms = append(forms, "'"+strings.ReplaceAll(sheet, "'", "''")+"'"+operand[i:])
	}
	return forms
}

// locate finds the first occurrence at or after from of any form that stands
// alone as an operand. It returns the start and length, or -1.
func locate(body string, from int, forms []string) (int, int) {
	best, size := -1, 0
	for _, form := range forms {
		for i := from; i <= len(body); {
			j := strings.Index(body[i:], form)
			if j < 0 {
				break
			}
			j += i
			if standsAlone(body, j, j+len(form)) {
				if best < 0 || j < best || (j == best && len(form) > size) {
					best, size = j, len(form)
				}
				break
			}
			i = j + 1
		}
	}
	return best, size
}

func standsAlone(body string, start, end int) bool {
	if start > 0 && operandByte(body[start-1]) {
		return false
	}
	return end == len(body) || (!operandByte(body[end]) && body[end] != '(')
}

func operandByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || strings.IndexByte("_.$!':", c) >= 0
}
