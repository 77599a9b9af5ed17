package gridshift

import (
	"github.com/ukaji3/gridshift-go/pkg/gridshift/anchors"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/refs"
	"go.uber.org/zap"
)

// delete removes count indices starting at pivot along axis. A span reaching
// past the axis limit is clamped to it.
func (e *Editor) delete(axis models.Axis, pivot, count int) error {
	if count < 1 {
		return newEditError(e.ws.Name, "delete", axis.String(), ErrInvalidArgument, "count %d below 1", count)
	}
	if err := e.checkIndex("delete", axis, "pivot", pivot); err != nil {
		return err
	}
	limit := e.limit(axis)
	count = min(count, limit-pivot+1)
	end := pivot + count - 1

	// Tables are validated before anything changes.
	plan, err := e.planTableDelete(axis, pivot, end)
	if err != nil {
		return err
	}
	e.log.Debug("delete",
		zap.Stringer("axis", axis), zap.Int("pivot", pivot), zap.Int("count", count))
	e.shrinkTables(axis, pivot, end, plan)

	// Drawings go before the property reindex: both length tables read the
	// layout as it stands before the deletion.
	sizer := e.sizer(e.ws)
	before := sizer.Table(axis, limit)
	after := sizer.TableAfterDelete(axis, limit, pivot, count)
	anchors.Delete(e.ws.Anchors, axis, pivot, count, before, after)

	// Properties, cells and comments
	e.propsShrink(axis, pivot, count)
	e.adjustFormulas(e.rewriter(), refs.Edit{Axis: axis, Pivot: pivot, Amount: -count})
	if dropped := delta.ShrinkKeys(e.ws.Cells, delta.PointAxis(axis), pivot, count); len(dropped) > 0 {
		e.log.Debug("cells deleted", zap.Int("count", len(dropped)))
	}
	delta.ShrinkKeys(e.ws.Comments, delta.PointAxis(axis), pivot, count)

	// Merges, hyperlinks, filters and validations
	e.shrinkRanges(axis, pivot, end)

	// Calc chain
	e.shrinkCalcChain(axis, pivot, end)

	// Sparklines
	e.shrinkSparklines(axis, pivot, end)
	return nil
}
