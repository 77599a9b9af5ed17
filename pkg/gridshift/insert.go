package gridshift

import (
	"github.com/ukaji3/gridshift-go/pkg/gridshift/anchors"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/refs"
	"go.uber.org/zap"
)

// insert adds count empty indices before pivot along axis. Content pushed
// past the axis limit is discarded.
func (e *Editor) insert(axis models.Axis, pivot, count int) error {
	if count < 1 {
		return newEditError(e.ws.Name, "insert", axis.String(), ErrInvalidArgument, "count %d below 1", count)
	}
	if err := e.checkIndex("insert", axis, "pivot", pivot); err != nil {
		return err
	}
	limit := e.limit(axis)
	// anything past limit-pivot+1 only pushes more content off the grid
	count = min(count, limit-pivot+1)
	e.log.Debug("insert",
		zap.Stringer("axis", axis), zap.Int("pivot", pivot), zap.Int("count", count))

	// Tables
	labels := e.growTables(axis, pivot, count, limit)

	// Properties, cells and comments
	e.propsGrow(axis, pivot, count, limit)
	e.adjustFormulas(e.rewriter(), refs.Edit{Axis: axis, Pivot: pivot, Amount: count})
	if dropped := delta.GrowKeys(e.ws.Cells, delta.PointAxis(axis), pivot, count, limit); len(dropped) > 0 {
		e.log.Debug("cells pushed off the grid", zap.Int("count", len(dropped)))
	}
	delta.GrowKeys(e.ws.Comments, delta.PointAxis(axis), pivot, count, limit)
	e.writeHeaderLabels(labels)

	// Merges, hyperlinks, filters and validations
	e.growRanges(axis, pivot, count, limit)

	// Drawings
	anchors.Insert(e.ws.Anchors, axis, pivot, count, limit)

	// Calc chain
	e.growCalcChain(axis, pivot, count, limit)

	// Sparklines
	e.growSparklines(axis, pivot, count, limit)
	return nil
}
