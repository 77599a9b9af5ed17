// Package loader reads an xlsx workbook into the gridshift worksheet model.
package loader

import (
	"archive/zip"
	"fmt"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultRowHeight = 15.0
	defaultColWidth  = 9.140625
)

// Load reads the workbook at path. Structures that fail to parse are
// logged and skipped so the rest of the workbook can still be edited.
func Load(path string, log *zap.Logger) (*models.Workbook, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := models.NewWorkbook()
	sheetIDs := make(map[string]int)
	for id, name := range f.GetSheetMap() {
		sheetIDs[name] = id
	}

	// Get sheet names
	for _, sheetName := range f.GetSheetList() {
		ws := models.NewWorksheet(sheetName, sheetIDs[sheetName])
		wb.Sheets = append(wb.Sheets, ws)
		sheetLog := log.With(zap.String("sheet", sheetName))

		rowHeight, colWidth := defaultRowHeight, defaultColWidth
		if props, err := f.GetSheetProps(sheetName); err == nil {
			if props.DefaultRowHeight != nil && *props.DefaultRowHeight > 0 {
				rowHeight = *props.DefaultRowHeight
				ws.DefaultRowHeight = rowHeight
			}
			if props.DefaultColWidth != nil && *props.DefaultColWidth > 0 {
				colWidth = *props.DefaultColWidth
				ws.DefaultColWidth = colWidth
			}
		}

		rows, cols, err := ExtractCells(f, ws)
		if err != nil {
			sheetLog.Warn("cells skipped", zap.Error(err))
		}
		if err := ExtractRowProps(f, ws, rows, rowHeight); err != nil {
			sheetLog.Warn("row properties skipped", zap.Error(err))
		}
		if err := ExtractColumnProps(f, ws, cols, colWidth); err != nil {
			sheetLog.Warn("column properties skipped", zap.Error(err))
		}
		if err := ExtractComments(f, ws); err != nil {
			sheetLog.Warn("comments skipped", zap.Error(err))
		}
		if err := ExtractMergeRegions(f, ws); err != nil {
			sheetLog.Warn("merge regions skipped", zap.Error(err))
		}
		if err := ExtractTables(f, wb, ws); err != nil {
			sheetLog.Warn("tables skipped", zap.Error(err))
		}
		if err := ExtractDataValidations(f, ws); err != nil {
			sheetLog.Warn("data validations skipped", zap.Error(err))
		}
	}
	ExtractDefinedNames(f, wb)

	// Drawings, sparklines and the calc chain require direct OOXML parsing
	if err := extractParts(path, wb); err != nil {
		log.Warn("drawings and calc chain skipped", zap.Error(err))
	}

	log.Debug("workbook loaded",
		zap.String("path", path), zap.Int("sheets", len(wb.Sheets)),
		zap.Int("names", len(wb.DefinedNames)), zap.Int("calc_chain", len(wb.CalcChain)))
	return wb, nil
}

// extractParts reads drawing anchors, sparkline groups and the calc chain
// straight from the package parts.
func extractParts(path string, wb *models.Workbook) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	parts, err := sheetParts(&r.Reader)
	if err != nil {
		return err
	}
	for _, ws := range wb.Sheets {
		part, ok := parts[ws.Name]
		if !ok {
			continue
		}
		if sheetXML, err := readZipFile(&r.Reader, part.path); err == nil && sheetXML != nil {
			ws.SparklineGroups = parseSparklineGroups(sheetXML, ws.Name)
		}
		if part.drawing == "" {
			continue
		}
		if drawingXML, err := readZipFile(&r.Reader, part.drawing); err == nil && drawingXML != nil {
			ws.Anchors = parseDrawingXML(drawingXML)
		}
	}

	chainXML, err := readZipFile(&r.Reader, "xl/calcChain.xml")
	if err != nil {
		return err
	}
	if chainXML != nil {
		wb.CalcChain = parseCalcChain(chainXML)
	}
	return nil
}
