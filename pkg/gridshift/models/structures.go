package models

// RowProps holds per-row metadata. A row without an entry uses the sheet defaults.
type RowProps struct {
	// Height is the row height in points, 0 for the default height.
	Height       float64 `json:"height,omitempty"`
	OutlineLevel uint8   `json:"outline_level,omitempty"`
	Hidden       bool    `json:"hidden,omitempty"`
	Collapsed    bool    `json:"collapsed,omitempty"`
	Style        int     `json:"style,omitempty"`
}

// ColumnProps holds per-column metadata. A column without an entry uses the sheet defaults.
type ColumnProps struct {
	// Width is the column width in character units, 0 for the default width.
	Width        float64 `json:"width,omitempty"`
	OutlineLevel uint8   `json:"outline_level,omitempty"`
	Hidden       bool    `json:"hidden,omitempty"`
	Collapsed    bool    `json:"collapsed,omitempty"`
	Style        int     `json:"style,omitempty"`
}

// MergeRegion is a merged block of cells.
type MergeRegion struct {
	Rect
}

// Hyperlink attaches a link target to a range.
type Hyperlink struct {
	// Ref is the linked range.
	Ref Rect `json:"ref"`
	// Location is an in-workbook target such as "Sheet2!A1".
	Location string `json:"location,omitempty"`
	// RelationshipID points into Worksheet.Relationships for external targets.
	RelationshipID string `json:"rid,omitempty"`
	Display        string `json:"display,omitempty"`
	Tooltip        string `json:"tooltip,omitempty"`
}

// Relationship is an external part referenced by the worksheet.
type Relationship struct {
	Target   string `json:"target"`
	External bool   `json:"external"`
}

// AutoFilter is a filtered range, either on the sheet or inside a table.
type AutoFilter struct {
	Ref Rect `json:"ref"`
	// SortState is only present when the filtered range carries sort conditions.
	SortState *SortState `json:"sort_state,omitempty"`
}

// SortState records the range sort conditions apply to.
type SortState struct {
	Ref Rect `json:"ref"`
	// Descending marks the primary sort condition as descending.
	Descending bool `json:"descending,omitempty"`
}

// DataValidation applies a validation rule to a set of ranges.
type DataValidation struct {
	Sqref   []Rect `json:"sqref"`
	Type    string `json:"type,omitempty"`
	Formula string `json:"formula,omitempty"`
}

// CalcChainEntry names a cell that takes part in ordered recalculation.
type CalcChainEntry struct {
	SheetID int `json:"sheet_id"`
	Row     int `json:"r"`
	Col     int `json:"c"`
}

// DefinedName is a workbook or sheet scoped name.
type DefinedName struct {
	Name     string `json:"name"`
	RefersTo string `json:"refers_to"`
	// LocalSheetID scopes the name to one sheet when set.
	LocalSheetID *int `json:"local_sheet_id,omitempty"`
	Hidden       bool `json:"hidden,omitempty"`
}
