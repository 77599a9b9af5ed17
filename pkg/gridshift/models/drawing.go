package models

// AnchorKind is the DrawingML anchor element an object is positioned by.
type AnchorKind string

const (
	// AnchorTwoCell positions the object by two corner markers.
	AnchorTwoCell AnchorKind = "twoCellAnchor"
	// AnchorOneCell positions the object by its top-left marker and an extent.
	AnchorOneCell AnchorKind = "oneCellAnchor"
	// AnchorAbsolute positions the object in absolute sheet coordinates.
	AnchorAbsolute AnchorKind = "absoluteAnchor"
)

// ResizeMode is how an object reacts to row and column edits.
type ResizeMode string

const (
	// ResizeMoveAndSize moves and resizes with the underlying cells.
	ResizeMoveAndSize ResizeMode = "twoCell"
	// ResizeMoveOnly moves with the top-left cell and keeps its size.
	ResizeMoveOnly ResizeMode = "oneCell"
	// ResizeFixed keeps the absolute position.
	ResizeFixed ResizeMode = "absolute"
)

// Marker is an anchor corner. Row and column ids are 0-based; offsets are EMU.
type Marker struct {
	Col       int   `json:"col"`
	ColOffset int64 `json:"col_off"`
	Row       int   `json:"row"`
	RowOffset int64 `json:"row_off"`
}

// ID returns the 0-based id along axis.
func (m Marker) ID(axis Axis) int {
	if axis == AxisColumn {
		return m.Col
	}
	return m.Row
}

// Offset returns the EMU offset along axis.
func (m Marker) Offset(axis Axis) int64 {
	if axis == AxisColumn {
		return m.ColOffset
	}
	return m.RowOffset
}

// With returns a copy of m with the id and offset along axis replaced.
func (m Marker) With(axis Axis, id int, offset int64) Marker {
	if axis == AxisColumn {
		m.Col, m.ColOffset = id, offset
	} else {
		m.Row, m.RowOffset = id, offset
	}
	return m
}

// Extent is an object size in EMU.
type Extent struct {
	Cx int64 `json:"cx"`
	Cy int64 `json:"cy"`
}

// Anchor positions one floating drawing object.
type Anchor struct {
	// Name is the object name from its non-visual properties.
	Name string     `json:"name,omitempty"`
	Kind AnchorKind `json:"kind"`
	// EditAs is the resize mode; fixed and absolute anchors ignore structural edits.
	EditAs ResizeMode `json:"edit_as"`
	From   Marker     `json:"from"`
	// To is only meaningful for two-cell anchors.
	To Marker `json:"to"`
	// Extent is set for one-cell and absolute anchors.
	Extent *Extent `json:"ext,omitempty"`
}

// Movable reports whether structural edits reposition the anchor.
func (a *Anchor) Movable() bool {
	return a.Kind != AnchorAbsolute && a.EditAs != ResizeFixed
}

// Rigid reports whether the anchor keeps its size when moved.
func (a *Anchor) Rigid() bool {
	return a.Kind == AnchorOneCell || a.EditAs == ResizeMoveOnly
}
