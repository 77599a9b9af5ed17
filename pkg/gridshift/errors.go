package gridshift

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a count below 1 or an index outside the grid.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidStructuralEdit indicates a delete that would split a table in a
// way spreadsheet applications do not allow.
var ErrInvalidStructuralEdit = errors.New("invalid structural edit")

// ErrSheetNotFound indicates the editor was bound to a sheet the workbook lacks.
var ErrSheetNotFound = errors.New("sheet not found")

// EditError represents a rejected edit. The worksheet is left unchanged.
type EditError struct {
	Sheet string
	Op    string // "insert", "delete", "copy", "cut"
	Axis  string // "row", "column"
	Err   error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s %ss in sheet %q: %v", e.Op, e.Axis, e.Sheet, e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// newEditError creates a new EditError wrapping err with a detail message.
func newEditError(sheet, op, axis string, err error, format string, args ...any) *EditError {
	return &EditError{
		Sheet: sheet,
		Op:    op,
		Axis:  axis,
		Err:   fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)),
	}
}
