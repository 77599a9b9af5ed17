package loader

import (
	"strings"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/xuri/excelize/v2"
)

// ExtractTables reads table definitions and registers them with the
// workbook. Column names come from the header row when the table shows one.
func ExtractTables(f *excelize.File, wb *models.Workbook, ws *models.Worksheet) error {
	tables, err := f.GetTables(ws.Name)
	if err != nil {
		return err
	}
	for _, t := range tables {
		ref, err := models.ParseRect(t.Range)
		if err != nil {
			continue
		}
		table := &models.Table{
			ID:          wb.NextTableID(),
			Name:        t.Name,
			DisplayName: t.Name,
			Ref:         ref,
			StyleName:   t.StyleName,
		}
		if t.ShowHeaderRow == nil || *t.ShowHeaderRow {
			table.HeaderRowCount = 1
			table.AutoFilter = &models.AutoFilter{Ref: ref}
		}
		for col := ref.StartCol; col <= ref.EndCol; col++ {
			name := ""
			if table.HasHeader() {
				if c := ws.Cells[models.Pt(ref.StartRow, col)]; c != nil {
					name = c.Value
				}
			}
			if name == "" {
				name = table.UniqueColumnName(nil)
			}
			table.Columns = append(table.Columns, models.TableColumn{ID: table.NextColumnID(), Name: name})
		}
		if err := wb.AddTable(ws, table); err != nil {
			return err
		}
	}
	return nil
}

// ExtractMergeRegions reads merged ranges.
func ExtractMergeRegions(f *excelize.File, ws *models.Worksheet) error {
	merges, err := f.GetMergeCells(ws.Name)
	if err != nil {
		return err
	}
	for _, m := range merges {
		ref, err := models.ParseRect(m.GetStartAxis() + ":" + m.GetEndAxis())
		if err != nil {
			continue
		}
		ws.MergeRegions = append(ws.MergeRegions, models.MergeRegion{Rect: ref})
	}
	return nil
}

// ExtractDataValidations reads validation rules and their target ranges.
func ExtractDataValidations(f *excelize.File, ws *models.Worksheet) error {
	validations, err := f.GetDataValidations(ws.Name)
	if err != nil {
		return err
	}
	for _, dv := range validations {
		rule := models.DataValidation{Type: dv.Type, Formula: dv.Formula1}
		for _, part := range strings.Fields(dv.Sqref) {
			if ref, err := models.ParseRect(part); err == nil {
				rule.Sqref = append(rule.Sqref, ref)
			}
		}
		if len(rule.Sqref) > 0 {
			ws.DataValidations = append(ws.DataValidations, rule)
		}
	}
	return nil
}

// ExtractDefinedNames reads workbook and sheet scoped names. Sheet scopes
// are resolved to positions in wb.Sheets.
func ExtractDefinedNames(f *excelize.File, wb *models.Workbook) {
	for _, dn := range f.GetDefinedName() {
		name := models.DefinedName{
			Name:     dn.Name,
			RefersTo: strings.TrimPrefix(dn.RefersTo, "="),
		}
		if dn.Scope != "" && !strings.EqualFold(dn.Scope, "Workbook") {
			for i, ws := range wb.Sheets {
				if strings.EqualFold(ws.Name, dn.Scope) {
					id := i
					name.LocalSheetID = &id
					break
				}
			}
		}
		wb.DefinedNames = append(wb.DefinedNames, name)
	}
}
