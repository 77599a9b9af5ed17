package loader

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/refs"
	"github.com/xuri/excelize/v2"
)

// parseCalcChain reads xl/calcChain.xml. An entry without a sheet id
// belongs to the same sheet as the entry before it.
func parseCalcChain(data []byte) []models.CalcChainEntry {
	var result []models.CalcChainEntry
	decoder := xml.NewDecoder(bytes.NewReader(data))

	sheetID := 0
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "c" {
			continue
		}
		var cell string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "r":
				cell = attr.Value
			case "i":
				if id, err := strconv.Atoi(attr.Value); err == nil {
					sheetID = id
				}
			}
		}
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			continue
		}
		result = append(result, models.CalcChainEntry{SheetID: sheetID, Row: row, Col: col})
	}
	return result
}

// parseSparklineGroups reads the x14 sparkline groups of a worksheet part.
// owner resolves unqualified ranges.
func parseSparklineGroups(data []byte, owner string) []*models.SparklineGroup {
	var groups []*models.SparklineGroup
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sparklineGroup" {
			groups = append(groups, parseSparklineGroup(decoder, se, owner))
		}
	}
	return groups
}

func parseSparklineGroup(decoder *xml.Decoder, start xml.StartElement, owner string) *models.SparklineGroup {
	g := &models.SparklineGroup{Type: "line"}
	for _, attr := range start.Attr {
		if attr.Name.Local == "type" {
			g.Type = attr.Value
		}
	}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				// a formula directly inside the group is the date axis
				if text, err := readElementText(decoder); err == nil && depth == 2 {
					g.DateAxis = parseSheetRange(text, owner)
				}
				depth--
			case "sparkline":
				if sp, ok := parseSparkline(decoder, owner); ok {
					g.Sparklines = append(g.Sparklines, sp)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return g
}

func parseSparkline(decoder *xml.Decoder, owner string) (models.Sparkline, bool) {
	var sp models.Sparkline
	located := false
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			text, err := readElementText(decoder)
			if err != nil {
				continue
			}
			switch t.Name.Local {
			case "f":
				sp.Source = parseSheetRange(text, owner)
			case "sqref":
				if p, err := models.ParsePoint(strings.TrimSpace(text)); err == nil {
					sp.Location = p
					located = true
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return sp, located
}

// parseSheetRange parses "Sheet1!A1:E1" into a sheet range.
func parseSheetRange(text, owner string) *models.SheetRange {
	ref, ok := refs.ParseReference(strings.TrimSpace(text))
	if !ok {
		return nil
	}
	sheet := ref.Sheet
	if sheet == "" {
		sheet = owner
	}
	return &models.SheetRange{Sheet: sheet, Ref: ref.Rect(excelize.TotalRows, excelize.MaxColumns)}
}
