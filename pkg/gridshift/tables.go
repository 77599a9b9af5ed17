package gridshift

import (
	"slices"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"go.uber.org/zap"
)

// headerLabel is a table header cell to write once the grid has been reindexed.
type headerLabel struct {
	at    models.CellPoint
	label string
}

// growTables shifts table ranges for an insertion and, for columns inserted
// strictly inside a table, adds new uniquely named columns. Tables pushed
// past the limit are removed and column lists never outgrow their range.
// The returned header labels are written after the cells have moved.
func (e *Editor) growTables(axis models.Axis, pivot, count, limit int) []headerLabel {
	e.ws.Tables = slices.DeleteFunc(e.ws.Tables, func(t *models.Table) bool {
		s, _ := t.Ref.Span(axis)
		if !pushedOff(pivot, count, limit, s) {
			return false
		}
		e.wb.ReleaseTable(t)
		e.log.Debug("table pushed off the grid", zap.String("table", t.DisplayName), zap.Uint("id", t.ID))
		return true
	})

	var labels []headerLabel
	for _, t := range e.ws.Tables {
		oldStart, oldEnd := t.Ref.Span(axis)
		inside := oldStart < pivot && pivot <= oldEnd

		t.Ref = growRect(t.Ref, axis, pivot, count, limit)
		if t.AutoFilter != nil {
			t.AutoFilter.Ref = growRect(t.AutoFilter.Ref, axis, pivot, count, limit)
			if ss := t.AutoFilter.SortState; ss != nil {
				ss.Ref = growRect(ss.Ref, axis, pivot, count, limit)
			}
		}
		if axis != models.AxisColumn {
			continue
		}

		var added []models.TableColumn
		if inside {
			at := pivot - oldStart
			added = make([]models.TableColumn, 0, min(count, t.Ref.Width()))
			id := t.NextColumnID()
			for i := 0; i < count && at+i < t.Ref.Width(); i++ {
				added = append(added, models.TableColumn{ID: id, Name: t.UniqueColumnName(added)})
				id++
			}
			t.Columns = slices.Insert(t.Columns, min(at, len(t.Columns)), added...)
		}
		if width := t.Ref.Width(); len(t.Columns) > width {
			e.log.Debug("table columns clamped",
				zap.String("table", t.DisplayName), zap.Int("width", width), zap.Int("dropped", len(t.Columns)-width))
			t.Columns = t.Columns[:width]
		}
		if len(added) == 0 {
			continue
		}
		if t.HasHeader() {
			for i, c := range added {
				labels = append(labels, headerLabel{at: models.Pt(t.Ref.StartRow, pivot+i), label: c.Name})
			}
		}
		e.log.Debug("table columns added",
			zap.String("table", t.DisplayName), zap.Int("at", pivot), zap.Int("count", len(added)))
	}
	return labels
}

// writeHeaderLabels puts the placeholder header text of new table columns into the grid.
func (e *Editor) writeHeaderLabels(labels []headerLabel) {
	for _, h := range labels {
		e.ws.Cells[h.at] = &models.Cell{Value: h.label, Type: models.CellTypeString}
	}
}

// tableDeletePlan records what a delete will do to tables, computed before
// anything is mutated.
type tableDeletePlan struct {
	remove     []*models.Table
	dropTotals []*models.Table
	// dropColumns maps a table to the [from, to] slice of its column list to remove.
	dropColumns map[*models.Table][2]int
}

// planTableDelete validates a delete of [start, end] against every table.
func (e *Editor) planTableDelete(axis models.Axis, start, end int) (tableDeletePlan, error) {
	plan := tableDeletePlan{dropColumns: make(map[*models.Table][2]int)}
	for _, t := range e.ws.Tables {
		s, en := t.Ref.Span(axis)
		switch delta.Classify(start, end, s, en) {
		case delta.Contained:
			plan.remove = append(plan.remove, t)
			continue
		case delta.Unaffected, delta.Shifted:
			continue
		}

		if axis == models.AxisColumn {
			from, to := max(start, s)-s, min(end, en)-s
			plan.dropColumns[t] = [2]int{from, to}
			continue
		}

		if hs, he, ok := t.HeaderRows(); ok && start <= he && hs <= end {
			return plan, newEditError(e.ws.Name, "delete", axis.String(), ErrInvalidStructuralEdit,
				"rows %d-%d remove the header of table %q", start, end, t.DisplayName)
		}
		bs, be := t.BodyRows()
		if bs <= be {
			covered := max(0, min(end, be)-max(start, bs)+1)
			if covered >= be-bs+1 {
				return plan, newEditError(e.ws.Name, "delete", axis.String(), ErrInvalidStructuralEdit,
					"rows %d-%d remove every data row of table %q", start, end, t.DisplayName)
			}
		}
		if ts, te, ok := t.TotalsRows(); ok && start <= te && ts <= end {
			plan.dropTotals = append(plan.dropTotals, t)
		}
	}
	return plan, nil
}

// shrinkTables applies a validated plan and shrinks the surviving tables.
func (e *Editor) shrinkTables(axis models.Axis, start, end int, plan tableDeletePlan) {
	for _, t := range plan.remove {
		e.wb.ReleaseTable(t)
		e.log.Debug("table removed", zap.String("table", t.DisplayName), zap.Uint("id", t.ID))
	}
	e.ws.Tables = slices.DeleteFunc(e.ws.Tables, func(t *models.Table) bool {
		return slices.Contains(plan.remove, t)
	})

	for _, t := range plan.dropTotals {
		t.TotalsRowCount = 0
		t.TotalsRowShown = false
	}

	count := end - start + 1
	for _, t := range e.ws.Tables {
		if r, ok := plan.dropColumns[t]; ok && r[0] < len(t.Columns) {
			t.Columns = slices.Delete(t.Columns, r[0], min(r[1]+1, len(t.Columns)))
		}
		t.Ref, _ = shrinkRect(t.Ref, axis, start, end, count)
		if t.AutoFilter == nil {
			continue
		}
		var ok bool
		if t.AutoFilter.Ref, ok = shrinkRect(t.AutoFilter.Ref, axis, start, end, count); !ok {
			t.AutoFilter = nil
			continue
		}
		if ss := t.AutoFilter.SortState; ss != nil {
			if ss.Ref, ok = shrinkRect(ss.Ref, axis, start, end, count); !ok {
				t.AutoFilter.SortState = nil
			}
		}
	}
}

// growRect applies Grow along axis.
func growRect(r models.Rect, axis models.Axis, pivot, count, limit int) models.Rect {
	s, e := r.Span(axis)
	s, e = delta.Grow(pivot, count, limit, s, e)
	return r.WithSpan(axis, s, e)
}

// shrinkRect applies Shrink along axis. ok is false when the deletion covers r.
func shrinkRect(r models.Rect, axis models.Axis, start, end, count int) (models.Rect, bool) {
	s, e := r.Span(axis)
	if delta.Classify(start, end, s, e) == delta.Contained {
		return r, false
	}
	s, e = delta.Shrink(start, end, count, s, e)
	return r.WithSpan(axis, s, e), true
}
