package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		input    string
		expected Rect
		str      string
	}{
		{"B2:D4", NewRect(2, 2, 4, 4), "B2:D4"},
		{"$A$1", NewRect(1, 1, 1, 1), "A1"},
		{"D4:B2", NewRect(2, 2, 4, 4), "B2:D4"},
		{"AA10:AB12", NewRect(10, 27, 12, 28), "AA10:AB12"},
	}

	for _, tt := range tests {
		result, err := ParseRect(tt.input)
		if err != nil {
			t.Errorf("ParseRect(%q) error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRect(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
		if result.String() != tt.str {
			t.Errorf("ParseRect(%q).String() = %q, expected %q", tt.input, result.String(), tt.str)
		}
	}

	if _, err := ParseRect("nope"); err == nil {
		t.Errorf("ParseRect(%q) error = nil, expected error", "nope")
	}
}

func TestCellPointText(t *testing.T) {
	p := Pt(3, 28)
	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "AB3", string(text))

	var back CellPoint
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, p, back)
	assert.True(t, Pt(1, 5).Less(Pt(2, 1)))
	assert.Equal(t, Pt(3, 9), p.WithIndex(AxisColumn, 9))
}

func TestAddMergeRegionOverlap(t *testing.T) {
	ws := NewWorksheet("Sheet1", 1)
	require.NoError(t, ws.AddMergeRegion("B2:C3"))
	assert.Error(t, ws.AddMergeRegion("C3:D4"))
	require.NoError(t, ws.AddMergeRegion("D4:E5"))
	assert.Len(t, ws.MergeRegions, 2)
}

func TestAddTableReservations(t *testing.T) {
	wb := NewWorkbook()
	ws := wb.AddSheet("Sheet1")

	first := &Table{ID: wb.NextTableID(), Name: "Table1", DisplayName: "Table1", Ref: NewRect(1, 1, 3, 2)}
	require.NoError(t, wb.AddTable(ws, first))
	assert.Equal(t, uint(2), wb.NextTableID())

	dupID := &Table{ID: 1, DisplayName: "Other"}
	assert.Error(t, wb.AddTable(ws, dupID))
	dupName := &Table{ID: 2, DisplayName: "TABLE1"}
	assert.Error(t, wb.AddTable(ws, dupName))

	wb.ReleaseTable(first)
	assert.NoError(t, wb.AddTable(ws, dupName))
}

func TestTableRowSpans(t *testing.T) {
	table := &Table{Ref: NewRect(2, 1, 10, 3), HeaderRowCount: 1, TotalsRowCount: 1}

	start, end, ok := table.HeaderRows()
	assert.True(t, ok)
	assert.Equal(t, []int{2, 2}, []int{start, end})
	start, end, ok = table.TotalsRows()
	assert.True(t, ok)
	assert.Equal(t, []int{10, 10}, []int{start, end})
	start, end = table.BodyRows()
	assert.Equal(t, []int{3, 9}, []int{start, end})

	table.Columns = []TableColumn{{ID: 4, Name: "a"}, {ID: 2, Name: "b"}}
	assert.Equal(t, uint(5), table.NextColumnID())
}

func TestUniqueColumnName(t *testing.T) {
	table := &Table{Columns: []TableColumn{{ID: 1, Name: "column1"}, {ID: 2, Name: "Qty"}, {ID: 3, Name: "Column3"}}}

	tests := []struct {
		pending  []TableColumn
		expected string
	}{
		{nil, "Column2"},
		{[]TableColumn{{Name: "COLUMN2"}}, "Column4"},
		{[]TableColumn{{Name: "Column2"}, {Name: "Column4"}}, "Column5"},
	}

	for _, tt := range tests {
		if result := table.UniqueColumnName(tt.pending); result != tt.expected {
			t.Errorf("UniqueColumnName(%v) = %q, expected %q", tt.pending, result, tt.expected)
		}
	}
}

func TestWorkbookClone(t *testing.T) {
	wb := NewWorkbook()
	ws := wb.AddSheet("Sheet1")
	require.NoError(t, ws.SetValue("A1", "before"))
	require.NoError(t, wb.AddTable(ws, &Table{ID: 1, DisplayName: "T", Ref: NewRect(1, 1, 2, 2)}))

	clone, err := wb.Clone()
	require.NoError(t, err)

	ws.Cell("A1").Value = "after"
	ws.Tables[0].Ref = NewRect(5, 5, 6, 6)

	cws := clone.Sheet("sheet1")
	require.NotNil(t, cws)
	assert.Equal(t, "before", cws.Cell("A1").Value)
	assert.Equal(t, NewRect(1, 1, 2, 2), cws.Tables[0].Ref)
	assert.Contains(t, clone.TableNames, "t")
}
