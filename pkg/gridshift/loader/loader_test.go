package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/xuri/excelize/v2"
)

func TestLoad(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Amount"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Label"))
	require.NoError(t, f.SetCellValue(sheetName, "C1", "link"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "A3", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "B2", "Text"))
	require.NoError(t, f.SetCellFormula(sheetName, "A4", "SUM(A2:A3)"))
	require.NoError(t, f.SetCellValue(sheetName, "B4", "total"))
	require.NoError(t, f.SetRowHeight(sheetName, 2, 30))
	require.NoError(t, f.SetColWidth(sheetName, "C", "C", 20))
	require.NoError(t, f.MergeCell(sheetName, "E1", "F2"))
	require.NoError(t, f.AddTable(sheetName, &excelize.Table{Range: "A1:B3", Name: "Sales"}))
	require.NoError(t, f.SetCellHyperLink(sheetName, "C1", "https://example.com", "External"))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Amounts", RefersTo: "Sheet1!$A$2:$A$3"}))
	dv := excelize.NewDataValidation(true)
	dv.Sqref = "D1:D5"
	require.NoError(t, dv.SetDropList([]string{"a", "b"}))
	require.NoError(t, f.AddDataValidation(sheetName, dv))

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	wb, err := Load(tmpFile, nil)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	ws := wb.Sheets[0]
	assert.Equal(t, "Sheet1", ws.Name)
	assert.Equal(t, 1, ws.ID)

	// Check values and types
	require.NotNil(t, ws.Cell("A1"))
	assert.Equal(t, "Amount", ws.Cell("A1").Value)
	assert.Equal(t, models.CellTypeString, ws.Cell("A1").Type)
	assert.Equal(t, "100", ws.Cell("A2").Value)
	assert.Equal(t, models.CellTypeNumber, ws.Cell("A2").Type)
	require.NotNil(t, ws.Cell("A4"))
	assert.Equal(t, "SUM(A2:A3)", ws.Cell("A4").Formula)
	assert.Equal(t, models.CellTypeFormula, ws.Cell("A4").Type)

	// Check layout
	require.Contains(t, ws.Rows, 2)
	assert.Equal(t, 30.0, ws.Rows[2].Height)
	require.Contains(t, ws.Columns, 3)
	assert.Equal(t, 20.0, ws.Columns[3].Width)
	assert.Equal(t, []models.MergeRegion{{Rect: models.NewRect(1, 5, 2, 6)}}, ws.MergeRegions)

	// Check table
	require.Len(t, ws.Tables, 1)
	table := ws.Tables[0]
	assert.Equal(t, "Sales", table.DisplayName)
	assert.Equal(t, models.NewRect(1, 1, 3, 2), table.Ref)
	assert.Equal(t, 1, table.HeaderRowCount)
	assert.Equal(t, []models.TableColumn{{ID: 1, Name: "Amount"}, {ID: 2, Name: "Label"}}, table.Columns)
	assert.Contains(t, wb.TableNames, "sales")

	// Check hyperlink
	require.Len(t, ws.Hyperlinks, 1)
	assert.Equal(t, models.NewRect(1, 3, 1, 3), ws.Hyperlinks[0].Ref)
	rel, ok := ws.Relationships[ws.Hyperlinks[0].RelationshipID]
	require.True(t, ok)
	assert.Equal(t, "https://example.com", rel.Target)
	assert.True(t, rel.External)

	// Check validations and names
	require.Len(t, ws.DataValidations, 1)
	assert.Equal(t, "list", ws.DataValidations[0].Type)
	assert.Equal(t, []models.Rect{models.NewRect(1, 4, 5, 4)}, ws.DataValidations[0].Sqref)
	// list literals keep their quotes so formula rewriting leaves them alone
	assert.Equal(t, `"a,b"`, ws.DataValidations[0].Formula)
	require.Len(t, wb.DefinedNames, 1)
	assert.Equal(t, "Amounts", wb.DefinedNames[0].Name)
	assert.Equal(t, "Sheet1!$A$2:$A$3", wb.DefinedNames[0].RefersTo)
	assert.Nil(t, wb.DefinedNames[0].LocalSheetID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), nil)
	assert.Error(t, err)
}

func TestInferType(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellType
	}{
		{"123", models.CellTypeNumber},
		{"123.45", models.CellTypeNumber},
		{"-100", models.CellTypeNumber},
		{"hello", models.CellTypeString},
		{"", models.CellTypeUnset},
	}

	for _, tt := range tests {
		result := inferType(tt.input)
		if result != tt.expected {
			t.Errorf("inferType(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
