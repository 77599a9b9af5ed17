package anchors

import (
	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
)

// Insert shifts anchors for count indices inserted at the 1-based pivot.
// Marker ids are 0-based, so the insertion point is pivot-1 and the last
// valid id is limit-1.
func Insert(list []*models.Anchor, axis models.Axis, pivot, count, limit int) {
	givenStart := pivot - 1
	for _, a := range list {
		if !a.Movable() {
			continue
		}
		fromID := a.From.ID(axis)
		if a.Rigid() {
			moved, _ := delta.Grow(givenStart, count, limit-1, fromID, fromID)
			shift := moved - fromID
			if shift == 0 {
				continue
			}
			a.From = a.From.With(axis, moved, a.From.Offset(axis))
			if a.Kind == models.AnchorTwoCell {
				toID := min(a.To.ID(axis)+shift, limit-1)
				a.To = a.To.With(axis, toID, a.To.Offset(axis))
			}
			continue
		}
		toID := a.To.ID(axis)
		fromID, toID = delta.Grow(givenStart, count, limit-1, fromID, toID)
		a.From = a.From.With(axis, fromID, a.From.Offset(axis))
		a.To = a.To.With(axis, toID, a.To.Offset(axis))
	}
}

// Delete repositions anchors for the deletion of count indices starting at
// the 1-based pivot. before describes the sheet prior to the deletion and
// after the sheet once it has happened.
func Delete(list []*models.Anchor, axis models.Axis, pivot, count int, before, after *LengthTable) {
	lineStart := before.At(pivot - 1)
	lineEnd := before.At(pivot + count - 1)
	removed := lineEnd - lineStart

	for _, a := range list {
		if !a.Movable() {
			continue
		}
		start := before.Position(a.From.ID(axis), a.From.Offset(axis))
		end := anchorEnd(a, axis, start, before)

		overlap := Classify(lineStart, lineEnd, start, end)
		if overlap == delta.Unaffected {
			continue
		}

		newStart, newEnd := start, end
		switch overlap {
		case delta.Contained:
			newStart, newEnd = lineStart, lineStart+1
		case delta.Shifted:
			newStart, newEnd = start-removed, end-removed
		case delta.LeadingClip:
			newStart, newEnd = lineStart, end-removed
		case delta.Interior:
			newEnd = end - removed
		case delta.TrailingClip:
			newEnd = lineStart
		}
		if a.Rigid() {
			newEnd = end + (newStart - start)
		}

		id, off := after.Locate(newStart)
		a.From = a.From.With(axis, id, off)
		if a.Kind == models.AnchorTwoCell {
			id, off = after.Locate(newEnd)
			a.To = a.To.With(axis, id, off)
		}
	}
}

// anchorEnd returns the absolute far edge of the anchor along axis.
func anchorEnd(a *models.Anchor, axis models.Axis, start int64, table *LengthTable) int64 {
	if a.Kind == models.AnchorTwoCell {
		return table.Position(a.To.ID(axis), a.To.Offset(axis))
	}
	if a.Extent == nil {
		return start
	}
	if axis == models.AxisColumn {
		return start + a.Extent.Cx
	}
	return start + a.Extent.Cy
}

// Classify places the absolute extent [start, end] of an object against the
// deleted band [lineStart, lineEnd].
func Classify(lineStart, lineEnd, start, end int64) delta.Overlap {
	switch {
	case lineStart <= start && end <= lineEnd:
		return delta.Contained
	case start >= lineEnd:
		return delta.Shifted
	case lineStart <= start && start < lineEnd && lineEnd < end:
		return delta.LeadingClip
	case start < lineStart && lineEnd < end:
		return delta.Interior
	case start < lineStart && lineStart < end && end <= lineEnd:
		return delta.TrailingClip
	default:
		return delta.Unaffected
	}
}
