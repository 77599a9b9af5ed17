package loader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
)

// sheetPart locates the XML parts belonging to one worksheet.
type sheetPart struct {
	path    string
	drawing string
}

// sheetParts maps sheet names to their worksheet and drawing part paths.
func sheetParts(r *zip.Reader) (map[string]sheetPart, error) {
	result := make(map[string]sheetPart)

	// Read workbook.xml to get sheet names and rIds
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result, nil
	}

	// Read workbook.xml.rels to map rId to sheet file
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result, err
	}

	for sheetName, sheetPath := range parseWorkbookRels(wbRelsXML, sheetsInfo) {
		part := sheetPart{path: sheetPath}
		relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
		relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)
		if sheetRelsXML, err := readZipFile(r, relsPath); err == nil && sheetRelsXML != nil {
			if target := findDrawingRelationship(sheetRelsXML); target != "" {
				part.drawing = resolveRelativePath(target, "xl/drawings")
			}
		}
		result[sheetName] = part
	}
	return result, nil
}

// parseDrawingXML reads every cell anchor of a drawing part.
func parseDrawingXML(data []byte) []*models.Anchor {
	var anchors []*models.Anchor

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				anchors = append(anchors, parseAnchor(decoder, se))
			}
		}
	}
	return anchors
}

// parseAnchor parses one anchor element up to its end tag.
func parseAnchor(decoder *xml.Decoder, start xml.StartElement) *models.Anchor {
	a := &models.Anchor{Kind: models.AnchorKind(start.Name.Local)}
	switch a.Kind {
	case models.AnchorTwoCell:
		a.EditAs = models.ResizeMoveAndSize
		for _, attr := range start.Attr {
			if attr.Name.Local == "editAs" {
				a.EditAs = models.ResizeMode(attr.Value)
			}
		}
	case models.AnchorOneCell:
		a.EditAs = models.ResizeMoveOnly
	default:
		a.EditAs = models.ResizeFixed
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
			case "from":
				a.From = parseMarker(decoder)
				depth--
			case "to":
				a.To = parseMarker(decoder)
				depth--
			case "ext":
				// only the anchor's own extent, not a shape transform
				if depth == 2 {
					a.Extent = &models.Extent{
						Cx: attrInt(t, "cx"),
						Cy: attrInt(t, "cy"),
					}
				}
			case "cNvPr":
				if a.Name == "" {
					for _, attr := range t.Attr {
						if attr.Name.Local == "name" {
							a.Name = attr.Value
						}
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return a
}

// parseMarker parses the col, colOff, row and rowOff children of a marker.
func parseMarker(decoder *xml.Decoder) models.Marker {
	var m models.Marker
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			text, err := readElementText(decoder)
			depth--
			if err != nil {
				continue
			}
			n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
			if err != nil {
				continue
			}
			switch t.Name.Local {
			case "col":
				m.Col = int(n)
			case "colOff":
				m.ColOffset = n
			case "row":
				m.Row = int(n)
			case "rowOff":
				m.RowOffset = n
			}
		case xml.EndElement:
			depth--
		}
	}
	return m
}

func attrInt(se xml.StartElement, name string) int64 {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			n, _ := strconv.ParseInt(attr.Value, 10, 64)
			return n
		}
	}
	return 0
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}
	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}
	return result
}

func findDrawingRelationship(data []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if strings.HasSuffix(relType, "/drawing") {
				return target
			}
		}
	}
	return ""
}
