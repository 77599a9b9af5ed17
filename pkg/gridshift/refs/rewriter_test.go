package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
)

const (
	maxRows = 1048576
	maxCols = 16384
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		text   string
		ok     bool
		sheet  string
		render string
	}{
		{"A1", true, "", "A1"},
		{"$B$2:C3", true, "", "$B$2:C3"},
		{"Sheet1!A1:B2", true, "Sheet1", "Sheet1!A1:B2"},
		{"'My Sheet'!$A:$C", true, "My Sheet", "'My Sheet'!$A:$C"},
		{"'It''s'!3:5", true, "It's", "'It''s'!3:5"},
		{"$3:$4", true, "", "$3:$4"},
		{"[1]Sheet1!A1", false, "", ""},
		{"MyName", false, "", ""},
		{"Sales2024", false, "", ""},
		{"A", false, "", ""},
		{"A1:B", false, "", ""},
		{"Sheet1:Sheet3!A1", false, "", ""},
		{"My Sheet!B2", true, "My Sheet", "'My Sheet'!B2"},
		{"O'Brien!C3", true, "O'Brien", "'O''Brien'!C3"},
		{"2024!A1", true, "2024", "'2024'!A1"},
	}

	for _, tt := range tests {
		ref, ok := ParseReference(tt.text)
		if ok != tt.ok {
			t.Errorf("ParseReference(%q) ok = %v, expected %v", tt.text, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if ref.Sheet != tt.sheet {
			t.Errorf("ParseReference(%q).Sheet = %q, expected %q", tt.text, ref.Sheet, tt.sheet)
		}
		if ref.String() != tt.render {
			t.Errorf("ParseReference(%q).String() = %q, expected %q", tt.text, ref.String(), tt.render)
		}
	}
}

func TestAdjustInsertRows(t *testing.T) {
	rw := NewRewriter("Sheet1", maxRows, maxCols)
	edit := Edit{Axis: models.AxisRow, Pivot: 3, Amount: 2}

	tests := []struct {
		formula string
		want    string
	}{
		{"A1", "A1"},
		{"A5", "A7"},
		{"=A1+A5", "=A1+A7"},
		{"SUM(A1:A10)", "SUM(A1:A12)"},
		{"SUM($A$3:$B$4)*2", "SUM($A$5:$B$6)*2"},
		{"B:B", "B:B"},
		{"3:4", "5:6"},
		{"Sheet2!A5", "Sheet2!A5"},
		{"Sheet1!A5", "Sheet1!A7"},
		{`IF(A5>0,"A5",A4)`, `IF(A7>0,"A5",A6)`},
		{"MyName+A3", "MyName+A5"},
	}

	for _, tt := range tests {
		got := rw.Adjust(tt.formula, "Sheet1", edit)
		assert.Equal(t, tt.want, got, "formula %q", tt.formula)
	}
}

func TestAdjustDeleteRows(t *testing.T) {
	rw := NewRewriter("Data", maxRows, maxCols)
	edit := Edit{Axis: models.AxisRow, Pivot: 2, Amount: -1}

	assert.Equal(t, "Data!#REF!", rw.Adjust("Data!A2", "Sheet1", edit))
	assert.Equal(t, "Data!#REF!*2", rw.Adjust("Data!A2*2", "Sheet1", edit))
	assert.Equal(t, "Data!A2+Data!#REF!", rw.Adjust("Data!A3+Data!A2", "Sheet1", edit))
	assert.Equal(t, "SUM(Data!A1:A2)", rw.Adjust("SUM(Data!A1:A3)", "Sheet1", edit))
	// unqualified references belong to the formula's own sheet
	assert.Equal(t, "A3", rw.Adjust("A3", "Sheet1", edit))
	assert.Equal(t, "A2", rw.Adjust("A3", "Data", edit))
}

func TestAdjustDeleteColumns(t *testing.T) {
	rw := NewRewriter("Sheet1", maxRows, maxCols)
	edit := Edit{Axis: models.AxisColumn, Pivot: 2, Amount: -2}

	assert.Equal(t, "A1+#REF!+B1", rw.Adjust("A1+C1+D1", "Sheet1", edit))
	assert.Equal(t, "SUM(A1:B1)", rw.Adjust("SUM(A1:D1)", "Sheet1", edit))
	assert.Equal(t, "SUM(A1:A5)", rw.Adjust("SUM(A1:C5)", "Sheet1", edit))
	assert.Equal(t, "B:B", rw.Adjust("D:D", "Sheet1", edit))
	assert.Equal(t, "1:2", rw.Adjust("1:2", "Sheet1", edit))
}

func TestAdjustInsertPastLimit(t *testing.T) {
	rw := NewRewriter("Sheet1", 10, 10)
	edit := Edit{Axis: models.AxisRow, Pivot: 5, Amount: 3}

	assert.Equal(t, "#REF!", rw.Adjust("A9", "Sheet1", edit))
	assert.Equal(t, "A8", rw.Adjust("A5", "Sheet1", edit))
	assert.Equal(t, "A1:A10", rw.Adjust("A1:A9", "Sheet1", edit))
}

func TestAdjustKeepsArraysAndText(t *testing.T) {
	rw := NewRewriter("Sheet1", maxRows, maxCols)
	edit := Edit{Axis: models.AxisRow, Pivot: 1, Amount: 1}

	assert.Equal(t, `SUMPRODUCT(A1:A2,{1;2})`, rw.Adjust(`SUMPRODUCT(A1:A2,{1;2})`, "Other", edit))
	assert.Equal(t, `CONCAT("say ""hi""",A2)`, rw.Adjust(`CONCAT("say ""hi""",A1)`, "Sheet1", edit))
	assert.Equal(t, "", rw.Adjust("", "Sheet1", edit))
}

func TestTranslate(t *testing.T) {
	rw := NewRewriter("Sheet1", maxRows, maxCols)

	assert.Equal(t, "A9+$A$1", rw.Translate("A1+$A$1", 8, 0))
	assert.Equal(t, "$A10+C$1", rw.Translate("$A2+B$1", 8, 1))
	assert.Equal(t, "SUM(B9:B10)", rw.Translate("SUM(B1:B2)", 8, 0))
	assert.Equal(t, "#REF!", rw.Translate("A1", -1, 0))
	assert.Equal(t, "A:A", rw.Translate("A:A", 5, 0))
}

func TestAdjustKeepsSourceText(t *testing.T) {
	rw := NewRewriter("Sheet1", maxRows, maxCols)
	far := Edit{Axis: models.AxisRow, Pivot: 500, Amount: 1}

	tests := []string{
		"'My Sheet'!A1+Sheet1!B2",
		"'Sheet1'!A1",
		"'O''Brien'!A1:B2*2",
		"SUM(A1:B2 B1:C3)",
		"A1:A3  +  1",
		"=IF( A1 > 0 , \"yes\" , \"no\" )",
		"LOG10(G1)",
	}

	for _, formula := range tests {
		if got := rw.Adjust(formula, "Sheet1", far); got != formula {
			t.Errorf("Adjust(%q) = %q, expected it unchanged", formula, got)
		}
	}
}

func TestAdjustQuotedSheetsAndIntersections(t *testing.T) {
	rw := NewRewriter("My Sheet", maxRows, maxCols)
	edit := Edit{Axis: models.AxisRow, Pivot: 2, Amount: 1}

	tests := []struct {
		formula string
		want    string
	}{
		{"'My Sheet'!A2+Sheet1!A2", "'My Sheet'!A3+Sheet1!A2"},
		{"SUM('My Sheet'!A1:A4)", "SUM('My Sheet'!A1:A5)"},
		{"SUM(A1:B2 B1:C3)", "SUM(A1:B3 B1:C4)"},
		{"A2  +  1", "A3  +  1"},
		{"LOG10(G2)", "LOG10(G3)"},
		{`"A2"&A2`, `"A2"&A3`},
	}

	for _, tt := range tests {
		got := rw.Adjust(tt.formula, "My Sheet", edit)
		assert.Equal(t, tt.want, got, "formula %q", tt.formula)
	}

	rw = NewRewriter("O'Brien", maxRows, maxCols)
	assert.Equal(t, "'O''Brien'!A3", rw.Adjust("'O''Brien'!A2", "Other", edit))
	assert.Equal(t, "'O''Brien'!#REF!", rw.Adjust("'O''Brien'!A2", "Other",
		Edit{Axis: models.AxisRow, Pivot: 2, Amount: -1}))

	// optional quotes around a plain name are kept
	rw = NewRewriter("Sheet1", maxRows, maxCols)
	assert.Equal(t, "'Sheet1'!A3*2+Sheet1!A3", rw.Adjust("'Sheet1'!A2*2+Sheet1!A2", "Other", edit))
}

func TestTranslateKeepsSpacing(t *testing.T) {
	rw := NewRewriter("Sheet1", maxRows, maxCols)

	assert.Equal(t, "'My Sheet'!A3 + B3", rw.Translate("'My Sheet'!A1 + B1", 2, 0))
	assert.Equal(t, "SUM(B1:B2 B2:C2)", rw.Translate("SUM(A1:A2 A2:B2)", 0, 1))
}
