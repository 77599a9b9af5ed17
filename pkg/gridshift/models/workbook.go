package models

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// Worksheet holds the grid and every structure anchored to it.
type Worksheet struct {
	// Name is the sheet tab name.
	Name string `json:"name"`
	// ID scopes calculation chain entries to this sheet.
	ID int `json:"id"`
	// DefaultRowHeight is in points, 0 to use the editor default.
	DefaultRowHeight float64 `json:"default_row_height,omitempty"`
	// DefaultColWidth is in character units, 0 to use the editor default.
	DefaultColWidth float64 `json:"default_col_width,omitempty"`

	Cells           map[CellPoint]*Cell     `json:"cells"`
	Rows            map[int]*RowProps       `json:"rows,omitempty"`
	Columns         map[int]*ColumnProps    `json:"columns,omitempty"`
	Comments        map[CellPoint]*Comment  `json:"comments,omitempty"`
	MergeRegions    []MergeRegion           `json:"merge_regions,omitempty"`
	Tables          []*Table                `json:"tables,omitempty"`
	Hyperlinks      []Hyperlink             `json:"hyperlinks,omitempty"`
	Relationships   map[string]Relationship `json:"relationships,omitempty"`
	Anchors         []*Anchor               `json:"anchors,omitempty"`
	SparklineGroups []*SparklineGroup       `json:"sparkline_groups,omitempty"`
	AutoFilter      *AutoFilter             `json:"auto_filter,omitempty"`
	DataValidations []DataValidation        `json:"data_validations,omitempty"`
}

// NewWorksheet returns an empty worksheet with all maps allocated.
func NewWorksheet(name string, id int) *Worksheet {
	return &Worksheet{
		Name:          name,
		ID:            id,
		Cells:         make(map[CellPoint]*Cell),
		Rows:          make(map[int]*RowProps),
		Columns:       make(map[int]*ColumnProps),
		Comments:      make(map[CellPoint]*Comment),
		Relationships: make(map[string]Relationship),
	}
}

// SetValue stores a string value at the cell name.
func (ws *Worksheet) SetValue(cell, value string) error {
	p, err := ParsePoint(cell)
	if err != nil {
		return err
	}
	ws.Cells[p] = &Cell{Value: value, Type: CellTypeString}
	return nil
}

// SetFormula stores formula text (with or without "=") at the cell name.
func (ws *Worksheet) SetFormula(cell, formula string) error {
	p, err := ParsePoint(cell)
	if err != nil {
		return err
	}
	ws.Cells[p] = &Cell{Formula: strings.TrimPrefix(formula, "="), Type: CellTypeFormula}
	return nil
}

// Cell returns the cell at the cell name, or nil.
func (ws *Worksheet) Cell(cell string) *Cell {
	p, err := ParsePoint(cell)
	if err != nil {
		return nil
	}
	return ws.Cells[p]
}

// AddMergeRegion records a merged range such as "B2:D4".
func (ws *Worksheet) AddMergeRegion(ref string) error {
	r, err := ParseRect(ref)
	if err != nil {
		return err
	}
	for _, m := range ws.MergeRegions {
		if m.Overlaps(r) {
			return fmt.Errorf("merge region %s overlaps %s", r, m.Rect)
		}
	}
	ws.MergeRegions = append(ws.MergeRegions, MergeRegion{Rect: r})
	return nil
}

// Workbook owns the worksheets and the workbook-global structures.
type Workbook struct {
	Sheets       []*Worksheet     `json:"sheets"`
	DefinedNames []DefinedName    `json:"defined_names,omitempty"`
	CalcChain    []CalcChainEntry `json:"calc_chain,omitempty"`

	// TableIDs and TableNames reserve table ids and lower-cased display names.
	TableIDs   map[uint]struct{}   `json:"-"`
	TableNames map[string]struct{} `json:"-"`
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{
		TableIDs:   make(map[uint]struct{}),
		TableNames: make(map[string]struct{}),
	}
}

// AddSheet appends a new worksheet with the next free id.
func (wb *Workbook) AddSheet(name string) *Worksheet {
	id := 1
	for _, ws := range wb.Sheets {
		if ws.ID >= id {
			id = ws.ID + 1
		}
	}
	ws := NewWorksheet(name, id)
	wb.Sheets = append(wb.Sheets, ws)
	return ws
}

// Sheet looks a worksheet up by name, case-insensitively.
func (wb *Workbook) Sheet(name string) *Worksheet {
	for _, ws := range wb.Sheets {
		if strings.EqualFold(ws.Name, name) {
			return ws
		}
	}
	return nil
}

// AddTable reserves the table id and display name and attaches the table to ws.
func (wb *Workbook) AddTable(ws *Worksheet, t *Table) error {
	if wb.TableIDs == nil {
		wb.TableIDs = make(map[uint]struct{})
	}
	if wb.TableNames == nil {
		wb.TableNames = make(map[string]struct{})
	}
	if _, ok := wb.TableIDs[t.ID]; ok {
		return fmt.Errorf("table id %d already in use", t.ID)
	}
	key := strings.ToLower(t.DisplayName)
	if _, ok := wb.TableNames[key]; ok {
		return fmt.Errorf("table name %q already in use", t.DisplayName)
	}
	wb.TableIDs[t.ID] = struct{}{}
	wb.TableNames[key] = struct{}{}
	ws.Tables = append(ws.Tables, t)
	return nil
}

// ReleaseTable frees the reservations held by t.
func (wb *Workbook) ReleaseTable(t *Table) {
	delete(wb.TableIDs, t.ID)
	delete(wb.TableNames, strings.ToLower(t.DisplayName))
}

// NextTableID returns the smallest table id above every reserved id.
func (wb *Workbook) NextTableID() uint {
	var max uint
	for id := range wb.TableIDs {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Clone returns a deep copy of the workbook.
func (wb *Workbook) Clone() (*Workbook, error) {
	var out Workbook
	if err := deepcopy.Copy(&out, wb); err != nil {
		return nil, err
	}
	return &out, nil
}
