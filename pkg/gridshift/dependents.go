package gridshift

import (
	"slices"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/delta"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/refs"
	"go.uber.org/zap"
)

// adjustFormulas rewrites every formula-like text that may point at the
// edited sheet: cell formulas, validation formulas and internal hyperlink
// targets on this sheet (and on the others unless disabled), then defined names.
func (e *Editor) adjustFormulas(rw *refs.Rewriter, edit refs.Edit) {
	for _, ws := range e.wb.Sheets {
		if ws != e.ws && !e.opts.ShouldAdjustOtherSheets() {
			continue
		}
		for _, c := range ws.Cells {
			if c != nil && c.HasFormula() {
				c.Formula = rw.Adjust(c.Formula, ws.Name, edit)
			}
		}
		for i := range ws.DataValidations {
			if f := ws.DataValidations[i].Formula; f != "" {
				ws.DataValidations[i].Formula = rw.Adjust(f, ws.Name, edit)
			}
		}
		for i := range ws.Hyperlinks {
			if loc := ws.Hyperlinks[i].Location; loc != "" {
				ws.Hyperlinks[i].Location = rw.Adjust(loc, ws.Name, edit)
			}
		}
	}
	for i := range e.wb.DefinedNames {
		n := &e.wb.DefinedNames[i]
		n.RefersTo = rw.Adjust(n.RefersTo, e.scopeSheet(n), edit)
	}
}

// scopeSheet returns the sheet unqualified references in a defined name
// resolve to. Workbook scoped names have none.
func (e *Editor) scopeSheet(n *models.DefinedName) string {
	if n.LocalSheetID == nil {
		return ""
	}
	if id := *n.LocalSheetID; id >= 0 && id < len(e.wb.Sheets) {
		return e.wb.Sheets[id].Name
	}
	return ""
}

// propsGrow reindexes the row or column property map for an insertion.
func (e *Editor) propsGrow(axis models.Axis, pivot, count, limit int) {
	if axis == models.AxisColumn {
		delta.GrowKeys(e.ws.Columns, delta.IntAxis[int]{}, pivot, count, limit)
		return
	}
	delta.GrowKeys(e.ws.Rows, delta.IntAxis[int]{}, pivot, count, limit)
}

// propsShrink reindexes the row or column property map for a deletion.
func (e *Editor) propsShrink(axis models.Axis, pivot, count int) {
	if axis == models.AxisColumn {
		delta.ShrinkKeys(e.ws.Columns, delta.IntAxis[int]{}, pivot, count)
		return
	}
	delta.ShrinkKeys(e.ws.Rows, delta.IntAxis[int]{}, pivot, count)
}

// releaseRelationship drops the relationship rid unless a hyperlink still uses it.
func (e *Editor) releaseRelationship(rid string) {
	if rid == "" {
		return
	}
	for _, h := range e.ws.Hyperlinks {
		if h.RelationshipID == rid {
			return
		}
	}
	delete(e.ws.Relationships, rid)
	e.log.Debug("relationship released", zap.String("rid", rid))
}

// growRanges shifts merges, hyperlinks, the sheet auto filter and data
// validations for an insertion. Ranges pushed off the grid are dropped.
func (e *Editor) growRanges(axis models.Axis, pivot, count, limit int) {
	off := func(r models.Rect) bool {
		s, _ := r.Span(axis)
		return pushedOff(pivot, count, limit, s)
	}

	e.ws.MergeRegions = slices.DeleteFunc(e.ws.MergeRegions, func(m models.MergeRegion) bool {
		return off(m.Rect)
	})
	for i := range e.ws.MergeRegions {
		e.ws.MergeRegions[i].Rect = growRect(e.ws.MergeRegions[i].Rect, axis, pivot, count, limit)
	}

	var released []string
	e.ws.Hyperlinks = slices.DeleteFunc(e.ws.Hyperlinks, func(h models.Hyperlink) bool {
		if off(h.Ref) {
			released = append(released, h.RelationshipID)
			return true
		}
		return false
	})
	for _, rid := range released {
		e.releaseRelationship(rid)
	}
	for i := range e.ws.Hyperlinks {
		e.ws.Hyperlinks[i].Ref = growRect(e.ws.Hyperlinks[i].Ref, axis, pivot, count, limit)
	}

	if af := e.ws.AutoFilter; af != nil {
		if off(af.Ref) {
			e.ws.AutoFilter = nil
		} else {
			af.Ref = growRect(af.Ref, axis, pivot, count, limit)
			if af.SortState != nil {
				af.SortState.Ref = growRect(af.SortState.Ref, axis, pivot, count, limit)
			}
		}
	}

	for i := range e.ws.DataValidations {
		dv := &e.ws.DataValidations[i]
		dv.Sqref = slices.DeleteFunc(dv.Sqref, off)
		for j := range dv.Sqref {
			dv.Sqref[j] = growRect(dv.Sqref[j], axis, pivot, count, limit)
		}
	}
	e.ws.DataValidations = slices.DeleteFunc(e.ws.DataValidations, func(dv models.DataValidation) bool {
		return len(dv.Sqref) == 0
	})
}

// shrinkRanges is the deletion counterpart of growRanges. Ranges covered by
// the deleted span are removed.
func (e *Editor) shrinkRanges(axis models.Axis, start, end int) {
	count := end - start + 1
	covered := func(r models.Rect) bool {
		s, en := r.Span(axis)
		return delta.Classify(start, end, s, en) == delta.Contained
	}

	e.ws.MergeRegions = slices.DeleteFunc(e.ws.MergeRegions, func(m models.MergeRegion) bool {
		return covered(m.Rect)
	})
	for i := range e.ws.MergeRegions {
		e.ws.MergeRegions[i].Rect, _ = shrinkRect(e.ws.MergeRegions[i].Rect, axis, start, end, count)
	}

	var released []string
	e.ws.Hyperlinks = slices.DeleteFunc(e.ws.Hyperlinks, func(h models.Hyperlink) bool {
		if covered(h.Ref) {
			released = append(released, h.RelationshipID)
			return true
		}
		return false
	})
	for _, rid := range released {
		e.releaseRelationship(rid)
	}
	for i := range e.ws.Hyperlinks {
		e.ws.Hyperlinks[i].Ref, _ = shrinkRect(e.ws.Hyperlinks[i].Ref, axis, start, end, count)
	}

	if af := e.ws.AutoFilter; af != nil {
		var ok bool
		if af.Ref, ok = shrinkRect(af.Ref, axis, start, end, count); !ok {
			e.ws.AutoFilter = nil
		} else if ss := af.SortState; ss != nil {
			if ss.Ref, ok = shrinkRect(ss.Ref, axis, start, end, count); !ok {
				af.SortState = nil
			}
		}
	}

	for i := range e.ws.DataValidations {
		dv := &e.ws.DataValidations[i]
		dv.Sqref = slices.DeleteFunc(dv.Sqref, covered)
		for j := range dv.Sqref {
			dv.Sqref[j], _ = shrinkRect(dv.Sqref[j], axis, start, end, count)
		}
	}
	e.ws.DataValidations = slices.DeleteFunc(e.ws.DataValidations, func(dv models.DataValidation) bool {
		return len(dv.Sqref) == 0
	})
}

// chainIndex returns a pointer to the axis field of a calc chain entry.
func chainIndex(c *models.CalcChainEntry, axis models.Axis) *int {
	if axis == models.AxisColumn {
		return &c.Col
	}
	return &c.Row
}

// growCalcChain shifts this sheet's calc chain entries for an insertion.
func (e *Editor) growCalcChain(axis models.Axis, pivot, count, limit int) {
	dropped := 0
	e.wb.CalcChain = slices.DeleteFunc(e.wb.CalcChain, func(c models.CalcChainEntry) bool {
		if c.SheetID != e.ws.ID {
			return false
		}
		if i := *chainIndex(&c, axis); i >= pivot && i+count > limit {
			dropped++
			return true
		}
		return false
	})
	for i := range e.wb.CalcChain {
		c := &e.wb.CalcChain[i]
		if c.SheetID != e.ws.ID {
			continue
		}
		if p := chainIndex(c, axis); *p >= pivot {
			*p += count
		}
	}
	if dropped > 0 {
		e.log.Debug("calc chain entries dropped", zap.Int("count", dropped))
	}
}

// shrinkCalcChain drops entries inside the deleted span and shifts later ones.
func (e *Editor) shrinkCalcChain(axis models.Axis, start, end int) {
	dropped := 0
	e.wb.CalcChain = slices.DeleteFunc(e.wb.CalcChain, func(c models.CalcChainEntry) bool {
		if c.SheetID != e.ws.ID {
			return false
		}
		if _, ok := delta.ShiftIndex(start, end, *chainIndex(&c, axis)); !ok {
			dropped++
			return true
		}
		return false
	})
	for i := range e.wb.CalcChain {
		c := &e.wb.CalcChain[i]
		if c.SheetID != e.ws.ID {
			continue
		}
		p := chainIndex(c, axis)
		*p, _ = delta.ShiftIndex(start, end, *p)
	}
	if dropped > 0 {
		e.log.Debug("calc chain entries dropped", zap.Int("count", dropped))
	}
}

// dropCalcChain removes this sheet's entries whose axis index lies in [start, end].
func (e *Editor) dropCalcChain(axis models.Axis, start, end int) int {
	before := len(e.wb.CalcChain)
	e.wb.CalcChain = slices.DeleteFunc(e.wb.CalcChain, func(c models.CalcChainEntry) bool {
		i := *chainIndex(&c, axis)
		return c.SheetID == e.ws.ID && i >= start && i <= end
	})
	return before - len(e.wb.CalcChain)
}

// growSparklines shifts sparkline ranges on every sheet that point at the
// edited sheet, and the host cells of groups owned by it.
func (e *Editor) growSparklines(axis models.Axis, pivot, count, limit int) {
	grow := func(r *models.SheetRange) *models.SheetRange {
		if !r.OnSheet(e.ws.Name) {
			return r
		}
		s, _ := r.Ref.Span(axis)
		if pushedOff(pivot, count, limit, s) {
			return nil
		}
		r.Ref = growRect(r.Ref, axis, pivot, count, limit)
		return r
	}

	for _, ws := range e.wb.Sheets {
		for _, g := range ws.SparklineGroups {
			g.DateAxis = grow(g.DateAxis)
			for i := range g.Sparklines {
				g.Sparklines[i].Source = grow(g.Sparklines[i].Source)
			}
			if ws != e.ws {
				continue
			}
			g.Sparklines = slices.DeleteFunc(g.Sparklines, func(sp models.Sparkline) bool {
				i := sp.Location.Index(axis)
				return i >= pivot && i+count > limit
			})
			for i := range g.Sparklines {
				loc := &g.Sparklines[i].Location
				if at := loc.Index(axis); at >= pivot {
					*loc = loc.WithIndex(axis, at+count)
				}
			}
		}
		e.pruneSparklineGroups(ws)
	}
}

// shrinkSparklines is the deletion counterpart of growSparklines.
func (e *Editor) shrinkSparklines(axis models.Axis, start, end int) {
	count := end - start + 1
	shrink := func(r *models.SheetRange) *models.SheetRange {
		if !r.OnSheet(e.ws.Name) {
			return r
		}
		var ok bool
		if r.Ref, ok = shrinkRect(r.Ref, axis, start, end, count); !ok {
			return nil
		}
		return r
	}

	for _, ws := range e.wb.Sheets {
		for _, g := range ws.SparklineGroups {
			g.DateAxis = shrink(g.DateAxis)
			for i := range g.Sparklines {
				g.Sparklines[i].Source = shrink(g.Sparklines[i].Source)
			}
			if ws != e.ws {
				continue
			}
			g.Sparklines = slices.DeleteFunc(g.Sparklines, func(sp models.Sparkline) bool {
				_, ok := delta.ShiftIndex(start, end, sp.Location.Index(axis))
				return !ok
			})
			for i := range g.Sparklines {
				loc := &g.Sparklines[i].Location
				next, _ := delta.ShiftIndex(start, end, loc.Index(axis))
				*loc = loc.WithIndex(axis, next)
			}
		}
		e.pruneSparklineGroups(ws)
	}
}

// pruneSparklineGroups removes groups left without sparklines.
func (e *Editor) pruneSparklineGroups(ws *models.Worksheet) {
	before := len(ws.SparklineGroups)
	ws.SparklineGroups = slices.DeleteFunc(ws.SparklineGroups, func(g *models.SparklineGroup) bool {
		return len(g.Sparklines) == 0
	})
	if n := before - len(ws.SparklineGroups); n > 0 {
		e.log.Debug("sparkline groups removed", zap.String("owner", ws.Name), zap.Int("count", n))
	}
}
