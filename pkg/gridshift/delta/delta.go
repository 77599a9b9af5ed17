// Package delta maps index ranges through row and column insertions and deletions.
package delta

// Overlap classifies a range [start, end] against a deleted span [givenStart, givenEnd].
type Overlap int

const (
	// Unaffected means the deleted span lies entirely after the range.
	Unaffected Overlap = iota
	// Shifted means the range lies entirely after the deleted span.
	Shifted
	// LeadingClip means the deleted span covers the start of the range only.
	LeadingClip
	// Interior means the deleted span lies strictly inside the range.
	Interior
	// TrailingClip means the deleted span covers the end of the range only.
	TrailingClip
	// Contained means the range lies entirely inside the deleted span.
	Contained
)

var overlapNames = [...]string{
	Unaffected:   "unaffected",
	Shifted:      "shifted",
	LeadingClip:  "leading-clip",
	Interior:     "interior",
	TrailingClip: "trailing-clip",
	Contained:    "contained",
}

func (o Overlap) String() string {
	if o < 0 || int(o) >= len(overlapNames) {
		return "unknown"
	}
	return overlapNames[o]
}

// Classify returns how the deleted span [givenStart, givenEnd] meets [start, end].
func Classify(givenStart, givenEnd, start, end int) Overlap {
	switch {
	case givenStart <= start && end <= givenEnd:
		return Contained
	case givenEnd < start:
		return Shifted
	case givenStart <= start && start <= givenEnd && givenEnd < end:
		return LeadingClip
	case start < givenStart && givenEnd < end:
		return Interior
	case start < givenStart && givenStart <= end && end <= givenEnd:
		return TrailingClip
	default:
		return Unaffected
	}
}

// Grow maps [start, end] through an insertion of amount indices at givenStart.
// Bounds at or after givenStart move by amount and are clamped to limit.
func Grow(givenStart, amount, limit, start, end int) (int, int) {
	if start >= givenStart {
		start = min(start+amount, limit)
	}
	if end >= givenStart {
		end = min(end+amount, limit)
	}
	return start, end
}

// Shrink maps [start, end] through the deletion of [givenStart, givenEnd],
// where amount is givenEnd-givenStart+1. A Contained range is returned
// unchanged; callers remove such entities before shrinking.
func Shrink(givenStart, givenEnd, amount, start, end int) (int, int) {
	switch Classify(givenStart, givenEnd, start, end) {
	case Shifted:
		return start - amount, end - amount
	case LeadingClip:
		return givenEnd + 1 - amount, end - amount
	case Interior:
		return start, end - amount
	case TrailingClip:
		return start, givenStart - 1
	default:
		return start, end
	}
}

// ShiftIndex maps one index through a deletion. ok is false when the index was deleted.
func ShiftIndex(givenStart, givenEnd, index int) (int, bool) {
	switch {
	case index < givenStart:
		return index, true
	case index > givenEnd:
		return index - (givenEnd - givenStart + 1), true
	default:
		return 0, false
	}
}
