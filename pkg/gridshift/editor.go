package gridshift

import (
	"fmt"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/anchors"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/refs"
	"go.uber.org/zap"
)

// Editor applies structural edits to one worksheet of a workbook.
//
// An Editor is not safe for concurrent use; callers sharing a workbook
// between goroutines must serialize edits themselves.
type Editor struct {
	wb   *models.Workbook
	ws   *models.Worksheet
	opts Options
	log  *zap.Logger
}

// NewEditor binds an editor to the named sheet of wb.
func NewEditor(wb *models.Workbook, sheet string, opts Options) (*Editor, error) {
	if wb == nil {
		return nil, fmt.Errorf("%w: nil workbook", ErrInvalidArgument)
	}
	ws := wb.Sheet(sheet)
	if ws == nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	ensureMaps(ws)
	opts = opts.withDefaults()
	return &Editor{
		wb:   wb,
		ws:   ws,
		opts: opts,
		log:  opts.Logger.With(zap.String("sheet", ws.Name)),
	}, nil
}

// ensureMaps allocates nil collections so edits can write into them.
func ensureMaps(ws *models.Worksheet) {
	if ws.Cells == nil {
		ws.Cells = make(map[models.CellPoint]*models.Cell)
	}
	if ws.Rows == nil {
		ws.Rows = make(map[int]*models.RowProps)
	}
	if ws.Columns == nil {
		ws.Columns = make(map[int]*models.ColumnProps)
	}
	if ws.Comments == nil {
		ws.Comments = make(map[models.CellPoint]*models.Comment)
	}
	if ws.Relationships == nil {
		ws.Relationships = make(map[string]models.Relationship)
	}
}

// Worksheet returns the sheet being edited.
func (e *Editor) Worksheet() *models.Worksheet {
	return e.ws
}

// InsertRows inserts count empty rows before row pivot.
func (e *Editor) InsertRows(pivot, count int) error {
	return e.insert(models.AxisRow, pivot, count)
}

// InsertColumns inserts count empty columns before column pivot.
func (e *Editor) InsertColumns(pivot, count int) error {
	return e.insert(models.AxisColumn, pivot, count)
}

// DeleteRows deletes count rows starting at row pivot.
func (e *Editor) DeleteRows(pivot, count int) error {
	return e.delete(models.AxisRow, pivot, count)
}

// DeleteColumns deletes count columns starting at column pivot.
func (e *Editor) DeleteColumns(pivot, count int) error {
	return e.delete(models.AxisColumn, pivot, count)
}

// CopyRows copies rows sourceStart..sourceEnd so the block starts at row
// anchor, overwriting whatever was there. With cut the source rows are cleared.
func (e *Editor) CopyRows(sourceStart, sourceEnd, anchor int, cut bool) error {
	return e.copyOrCut(models.AxisRow, sourceStart, sourceEnd, anchor, cut)
}

// CopyColumns is the column counterpart of CopyRows.
func (e *Editor) CopyColumns(sourceStart, sourceEnd, anchor int, cut bool) error {
	return e.copyOrCut(models.AxisColumn, sourceStart, sourceEnd, anchor, cut)
}

func (e *Editor) limit(axis models.Axis) int {
	if axis == models.AxisColumn {
		return e.opts.MaxColumns
	}
	return e.opts.MaxRows
}

func (e *Editor) rewriter() *refs.Rewriter {
	return refs.NewRewriter(e.ws.Name, e.opts.MaxRows, e.opts.MaxColumns)
}

func (e *Editor) sizer(ws *models.Worksheet) anchors.Sizer {
	return anchors.Sizer{
		Sheet:            ws,
		DefaultRowHeight: e.opts.DefaultRowHeight,
		DefaultColWidth:  e.opts.DefaultColumnWidth,
		MaxDigitWidth:    e.opts.MaxDigitWidth,
	}
}

// checkIndex validates a 1-based index against the axis limit.
func (e *Editor) checkIndex(op string, axis models.Axis, name string, index int) error {
	if index < 1 || index > e.limit(axis) {
		return newEditError(e.ws.Name, op, axis.String(), ErrInvalidArgument,
			"%s %d outside 1..%d", name, index, e.limit(axis))
	}
	return nil
}

// pushedOff reports whether a range starting at start leaves the grid when
// count indices are inserted at pivot.
func pushedOff(pivot, count, limit, start int) bool {
	return start >= pivot && start+count > limit
}
