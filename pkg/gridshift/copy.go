package gridshift

import (
	"fmt"
	"slices"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"go.uber.org/zap"
)

// copyOrCut places a copy of [sourceStart, sourceEnd] at anchor, replacing
// the destination block. Defined names are not adjusted and calc chain
// entries in the destination, plus the source when cutting, are dropped.
func (e *Editor) copyOrCut(axis models.Axis, sourceStart, sourceEnd, anchor int, cut bool) error {
	op := "copy"
	if cut {
		op = "cut"
	}
	for _, arg := range []struct {
		name  string
		index int
	}{{"source start", sourceStart}, {"source end", sourceEnd}, {"anchor", anchor}} {
		if err := e.checkIndex(op, axis, arg.name, arg.index); err != nil {
			return err
		}
	}
	if sourceStart > sourceEnd {
		return newEditError(e.ws.Name, op, axis.String(), ErrInvalidArgument,
			"source start %d after source end %d", sourceStart, sourceEnd)
	}
	if anchor == sourceStart {
		return newEditError(e.ws.Name, op, axis.String(), ErrInvalidArgument,
			"anchor %d equals source start", anchor)
	}

	limit := e.limit(axis)
	offset := anchor - sourceStart
	destEnd := min(anchor+sourceEnd-sourceStart, limit)
	key := delta.PointAxis(axis)

	// Snapshots are deep copies so the source can be overwritten when the
	// blocks overlap.
	cells, err := snapshot(e.ws.Cells, key, sourceStart, sourceEnd)
	if err != nil {
		return fmt.Errorf("snapshot cells: %w", err)
	}
	var rows map[int]*models.RowProps
	var cols map[int]*models.ColumnProps
	if axis == models.AxisColumn {
		cols, err = snapshot(e.ws.Columns, delta.IntAxis[int]{}, sourceStart, sourceEnd)
	} else {
		rows, err = snapshot(e.ws.Rows, delta.IntAxis[int]{}, sourceStart, sourceEnd)
	}
	if err != nil {
		return fmt.Errorf("snapshot %s properties: %w", axis, err)
	}
	e.log.Debug(op,
		zap.Stringer("axis", axis), zap.Int("start", sourceStart), zap.Int("end", sourceEnd),
		zap.Int("anchor", anchor))

	// Clear the source when cutting, then the destination.
	if cut {
		delta.TakeKeys(e.ws.Cells, key, sourceStart, sourceEnd)
		e.propsTake(axis, sourceStart, sourceEnd)
	}
	delta.TakeKeys(e.ws.Cells, key, anchor, destEnd)
	e.propsTake(axis, anchor, destEnd)

	// Write the block at the destination.
	rw := e.rewriter()
	rowOff, colOff := offset, 0
	if axis == models.AxisColumn {
		rowOff, colOff = 0, offset
	}
	paste(e.ws.Cells, key, cells, offset, limit, func(c *models.Cell) {
		if c != nil && c.HasFormula() {
			c.Formula = rw.Translate(c.Formula, rowOff, colOff)
		}
	})
	if axis == models.AxisColumn {
		paste(e.ws.Columns, delta.IntAxis[int]{}, cols, offset, limit, nil)
	} else {
		paste(e.ws.Rows, delta.IntAxis[int]{}, rows, offset, limit, nil)
	}

	e.copyMerges(axis, sourceStart, sourceEnd, anchor, destEnd, cut)

	dropped := e.dropCalcChain(axis, anchor, destEnd)
	if cut {
		dropped += e.dropCalcChain(axis, sourceStart, sourceEnd)
	}
	if dropped > 0 {
		e.log.Debug("calc chain entries dropped", zap.Int("count", dropped))
	}
	return nil
}

// propsTake clears row or column properties in [start, end].
func (e *Editor) propsTake(axis models.Axis, start, end int) {
	if axis == models.AxisColumn {
		delta.TakeKeys(e.ws.Columns, delta.IntAxis[int]{}, start, end)
		return
	}
	delta.TakeKeys(e.ws.Rows, delta.IntAxis[int]{}, start, end)
}

// copyMerges recreates merges lying fully inside the source at the
// destination. Merges meeting the destination block are replaced.
func (e *Editor) copyMerges(axis models.Axis, sourceStart, sourceEnd, anchor, destEnd int, cut bool) {
	offset := anchor - sourceStart
	var placed []models.MergeRegion
	for _, m := range e.ws.MergeRegions {
		s, en := m.Span(axis)
		if s < sourceStart || en > sourceEnd || en+offset > destEnd {
			continue
		}
		placed = append(placed, models.MergeRegion{Rect: m.WithSpan(axis, s+offset, en+offset)})
	}
	e.ws.MergeRegions = slices.DeleteFunc(e.ws.MergeRegions, func(m models.MergeRegion) bool {
		s, en := m.Span(axis)
		if cut && s >= sourceStart && en <= sourceEnd {
			return true
		}
		return s <= destEnd && anchor <= en
	})
	e.ws.MergeRegions = append(e.ws.MergeRegions, placed...)
}

// snapshot returns a deep copy of the entries of m whose index lies in [start, end].
func snapshot[K comparable, V any, A delta.KeyAxis[K]](m map[K]V, axis A, start, end int) (map[K]V, error) {
	block := make(map[K]V)
	for k, v := range m {
		if i := axis.Index(k); i >= start && i <= end {
			block[k] = v
		}
	}
	var out map[K]V
	if err := deepcopy.Copy(&out, block); err != nil {
		return nil, err
	}
	return out, nil
}

// paste writes block into m shifted by offset, skipping entries past limit.
// fix, when set, is applied to each value before it is stored.
func paste[K comparable, V any, A delta.KeyAxis[K]](m map[K]V, axis A, block map[K]V, offset, limit int, fix func(V)) {
	for k, v := range block {
		i := axis.Index(k) + offset
		if i > limit {
			continue
		}
		if fix != nil {
			fix(v)
		}
		m[axis.WithIndex(k, i)] = v
	}
}
