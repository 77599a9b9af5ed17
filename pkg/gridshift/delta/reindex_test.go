package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
)

func TestGrowKeysDescendingNoCollision(t *testing.T) {
	m := map[int]string{1: "a", 3: "c", 4: "d", 5: "e"}

	dropped := GrowKeys(m, IntAxis[int]{}, 3, 1, 100)

	assert.Empty(t, dropped)
	assert.Equal(t, map[int]string{1: "a", 4: "c", 5: "d", 6: "e"}, m)
}

func TestGrowKeysDropsPastLimit(t *testing.T) {
	m := map[int]string{2: "b", 9: "i", 10: "j"}

	dropped := GrowKeys(m, IntAxis[int]{}, 2, 2, 10)

	assert.ElementsMatch(t, []string{"i", "j"}, dropped)
	assert.Equal(t, map[int]string{4: "b"}, m)
}

func TestShrinkKeysAscending(t *testing.T) {
	m := map[uint32]string{1: "a", 3: "c", 4: "d", 5: "e", 7: "g"}

	dropped := ShrinkKeys(m, IntAxis[uint32]{}, 3, 2)

	assert.ElementsMatch(t, []string{"c", "d"}, dropped)
	assert.Equal(t, map[uint32]string{1: "a", 3: "e", 5: "g"}, m)
}

func TestPointAxisColumns(t *testing.T) {
	m := map[models.CellPoint]int{
		models.Pt(1, 1): 11,
		models.Pt(1, 2): 12,
		models.Pt(2, 3): 23,
	}

	GrowKeys(m, PointAxis(models.AxisColumn), 2, 1, 16384)
	assert.Equal(t, map[models.CellPoint]int{
		models.Pt(1, 1): 11,
		models.Pt(1, 3): 12,
		models.Pt(2, 4): 23,
	}, m)

	dropped := ShrinkKeys(m, PointAxis(models.AxisColumn), 3, 1)
	assert.Equal(t, []int{12}, dropped)
	assert.Equal(t, map[models.CellPoint]int{
		models.Pt(1, 1): 11,
		models.Pt(2, 3): 23,
	}, m)
}

func TestTakeKeys(t *testing.T) {
	m := map[int]string{1: "a", 2: "b", 3: "c"}

	taken := TakeKeys(m, IntAxis[int]{}, 2, 3)

	assert.Equal(t, map[int]string{2: "b", 3: "c"}, taken)
	assert.Equal(t, map[int]string{1: "a"}, m)
}
