package loader

import (
	"strconv"
	"strings"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/xuri/excelize/v2"
)

// cellTypes maps excelize cell types onto the model's.
var cellTypes = map[excelize.CellType]models.CellType{
	excelize.CellTypeUnset:        models.CellTypeUnset,
	excelize.CellTypeBool:         models.CellTypeBool,
	excelize.CellTypeDate:         models.CellTypeDate,
	excelize.CellTypeError:        models.CellTypeError,
	excelize.CellTypeFormula:      models.CellTypeFormula,
	excelize.CellTypeInlineString: models.CellTypeString,
	excelize.CellTypeNumber:       models.CellTypeNumber,
	excelize.CellTypeSharedString: models.CellTypeString,
}

// ExtractCells reads values, formulas and styles of every populated cell.
// It returns the number of rows and columns the grid spans.
func ExtractCells(f *excelize.File, ws *models.Worksheet) (int, int, error) {
	rows, err := f.GetRows(ws.Name, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, 0, err
	}

	// GetRows trims trailing cells without a value, so formula-only cells
	// past the data are only reached through the stored dimension.
	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}
	if dim, err := f.GetSheetDimension(ws.Name); err == nil {
		if r, err := models.ParseRect(dim); err == nil {
			maxRow, maxCol = max(maxRow, r.EndRow), max(maxCol, r.EndCol)
		}
	}

	for rowNum := 1; rowNum <= maxRow; rowNum++ {
		for colIdx := 0; colIdx < maxCol; colIdx++ {
			value := ""
			if rowNum <= len(rows) && colIdx < len(rows[rowNum-1]) {
				value = rows[rowNum-1][colIdx]
			}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			formula, err := f.GetCellFormula(ws.Name, cellName)
			if err != nil {
				return 0, 0, err
			}
			if value == "" && formula == "" {
				continue
			}

			cell := &models.Cell{Value: value, Formula: strings.TrimPrefix(formula, "=")}
			if t, err := f.GetCellType(ws.Name, cellName); err == nil {
				cell.Type = cellTypes[t]
			}
			if cell.Type == models.CellTypeUnset {
				cell.Type = inferType(value)
			}
			if formula != "" {
				cell.Type = models.CellTypeFormula
			}
			if style, err := f.GetCellStyle(ws.Name, cellName); err == nil {
				cell.Style = style
			}
			ws.Cells[models.Pt(rowNum, colIdx+1)] = cell

			// Extract hyperlink
			hasLink, target, err := f.GetCellHyperLink(ws.Name, cellName)
			if err == nil && hasLink && target != "" {
				addHyperlink(ws, models.Pt(rowNum, colIdx+1), target)
			}
		}
	}
	return maxRow, maxCol, nil
}

// inferType guesses the type of a raw value without a stored type.
func inferType(s string) models.CellType {
	if s == "" {
		return models.CellTypeUnset
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return models.CellTypeNumber
	}
	return models.CellTypeString
}

// addHyperlink records a link. Targets with a scheme are external and get
// their own relationship.
func addHyperlink(ws *models.Worksheet, at models.CellPoint, target string) {
	link := models.Hyperlink{Ref: models.NewRect(at.Row, at.Col, at.Row, at.Col)}
	if strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:") {
		rid := "rId" + strconv.Itoa(len(ws.Relationships)+1)
		ws.Relationships[rid] = models.Relationship{Target: target, External: true}
		link.RelationshipID = rid
	} else {
		link.Location = target
	}
	ws.Hyperlinks = append(ws.Hyperlinks, link)
}

// ExtractRowProps records rows whose height, visibility or outline level
// differs from the sheet default.
func ExtractRowProps(f *excelize.File, ws *models.Worksheet, rows int, defaultHeight float64) error {
	for row := 1; row <= rows; row++ {
		height, err := f.GetRowHeight(ws.Name, row)
		if err != nil {
			return err
		}
		visible, err := f.GetRowVisible(ws.Name, row)
		if err != nil {
			return err
		}
		level, err := f.GetRowOutlineLevel(ws.Name, row)
		if err != nil {
			return err
		}
		if height == defaultHeight && visible && level == 0 {
			continue
		}
		props := &models.RowProps{Hidden: !visible, OutlineLevel: level}
		if height != defaultHeight {
			props.Height = height
		}
		ws.Rows[row] = props
	}
	return nil
}

// ExtractColumnProps is the column counterpart of ExtractRowProps.
func ExtractColumnProps(f *excelize.File, ws *models.Worksheet, cols int, defaultWidth float64) error {
	for col := 1; col <= cols; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		width, err := f.GetColWidth(ws.Name, name)
		if err != nil {
			return err
		}
		visible, err := f.GetColVisible(ws.Name, name)
		if err != nil {
			return err
		}
		level, err := f.GetColOutlineLevel(ws.Name, name)
		if err != nil {
			return err
		}
		if width == defaultWidth && visible && level == 0 {
			continue
		}
		props := &models.ColumnProps{Hidden: !visible, OutlineLevel: level}
		if width != defaultWidth {
			props.Width = width
		}
		ws.Columns[col] = props
	}
	return nil
}

// ExtractComments reads cell notes.
func ExtractComments(f *excelize.File, ws *models.Worksheet) error {
	comments, err := f.GetComments(ws.Name)
	if err != nil {
		return err
	}
	for _, c := range comments {
		p, err := models.ParsePoint(c.Cell)
		if err != nil {
			continue
		}
		text := c.Text
		if text == "" {
			var b strings.Builder
			for _, run := range c.Paragraph {
				b.WriteString(run.Text)
			}
			text = b.String()
		}
		ws.Comments[p] = &models.Comment{
			Author: c.Author,
			Text:   text,
			Width:  float64(c.Width),
			Height: float64(c.Height),
		}
	}
	return nil
}
