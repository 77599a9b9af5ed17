// Package output serializes the worksheet model to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
)

// ToJSON serializes a workbook to JSON.
func ToJSON(wb *models.Workbook, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single worksheet to JSON.
func SheetToJSON(ws *models.Worksheet, pretty bool) ([]byte, error) {
	return marshal(ws, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
