package delta

import (
	"testing"
)

func TestGrow(t *testing.T) {
	tests := []struct {
		givenStart, amount, limit int
		start, end                int
		wantStart, wantEnd        int
	}{
		{3, 2, 100, 1, 2, 1, 2},     // before the insertion point
		{3, 2, 100, 3, 5, 5, 7},     // starts at the insertion point
		{3, 2, 100, 1, 5, 1, 7},     // spans the insertion point
		{3, 2, 100, 10, 20, 12, 22}, // after
		{3, 5, 10, 8, 9, 10, 10},    // clamped to the limit
		{3, 0, 100, 4, 6, 4, 6},     // zero amount
	}

	for _, tt := range tests {
		s, e := Grow(tt.givenStart, tt.amount, tt.limit, tt.start, tt.end)
		if s != tt.wantStart || e != tt.wantEnd {
			t.Errorf("Grow(%d, %d, %d, %d, %d) = (%d, %d), expected (%d, %d)",
				tt.givenStart, tt.amount, tt.limit, tt.start, tt.end, s, e, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestClassifyAndShrink(t *testing.T) {
	tests := []struct {
		givenStart, givenEnd int
		start, end           int
		overlap              Overlap
		wantStart, wantEnd   int
	}{
		{3, 4, 6, 9, Shifted, 4, 7},
		{3, 4, 4, 9, LeadingClip, 3, 7},
		{3, 4, 3, 9, LeadingClip, 3, 7},
		{3, 4, 1, 9, Interior, 1, 7},
		{3, 4, 1, 4, TrailingClip, 1, 2},
		{3, 4, 1, 3, TrailingClip, 1, 2},
		{3, 4, 1, 2, Unaffected, 1, 2},
		{3, 4, 3, 4, Contained, 3, 4},
	}

	for _, tt := range tests {
		got := Classify(tt.givenStart, tt.givenEnd, tt.start, tt.end)
		if got != tt.overlap {
			t.Errorf("Classify(%d, %d, %d, %d) = %s, expected %s",
				tt.givenStart, tt.givenEnd, tt.start, tt.end, got, tt.overlap)
		}
		amount := tt.givenEnd - tt.givenStart + 1
		s, e := Shrink(tt.givenStart, tt.givenEnd, amount, tt.start, tt.end)
		if s != tt.wantStart || e != tt.wantEnd {
			t.Errorf("Shrink(%d, %d, %d, %d, %d) = (%d, %d), expected (%d, %d)",
				tt.givenStart, tt.givenEnd, amount, tt.start, tt.end, s, e, tt.wantStart, tt.wantEnd)
		}
	}
}

// Ranges the deletion does not clip come back unchanged after growing at the
// same point by the same amount.
func TestShrinkThenGrowRestores(t *testing.T) {
	const limit = 1000
	for givenStart := 1; givenStart <= 8; givenStart++ {
		for givenEnd := givenStart; givenEnd <= 10; givenEnd++ {
			amount := givenEnd - givenStart + 1
			for start := 1; start <= 14; start++ {
				for end := start; end <= 14; end++ {
					switch Classify(givenStart, givenEnd, start, end) {
					case Contained, LeadingClip, TrailingClip:
						continue
					}
					s, e := Shrink(givenStart, givenEnd, amount, start, end)
					s, e = Grow(givenStart, amount, limit, s, e)
					if s != start || e != end {
						t.Fatalf("span [%d,%d] range [%d,%d]: round trip gave [%d,%d]",
							givenStart, givenEnd, start, end, s, e)
					}
				}
			}
		}
	}
}

func TestShiftIndex(t *testing.T) {
	tests := []struct {
		index  int
		want   int
		wantOK bool
	}{
		{2, 2, true},
		{3, 0, false},
		{5, 0, false},
		{6, 3, true},
	}

	for _, tt := range tests {
		got, ok := ShiftIndex(3, 5, tt.index)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ShiftIndex(3, 5, %d) = (%d, %v), expected (%d, %v)", tt.index, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOverlapString(t *testing.T) {
	if Interior.String() != "interior" {
		t.Errorf("Interior.String() = %q", Interior.String())
	}
	if Overlap(42).String() != "unknown" {
		t.Errorf("Overlap(42).String() = %q", Overlap(42).String())
	}
}
