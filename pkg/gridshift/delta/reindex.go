package delta

import (
	"cmp"
	"slices"

	"github.com/ukaji3/gridshift-go/pkg/gridshift/models"
	"golang.org/x/exp/constraints"
)

// KeyAxis reads and replaces the index a map key is shifted along.
type KeyAxis[K comparable] interface {
	Index(key K) int
	WithIndex(key K, index int) K
}

// IntAxis treats an integer key as the index itself.
type IntAxis[K constraints.Integer] struct{}

// Index returns the key as an int.
func (IntAxis[K]) Index(key K) int { return int(key) }

// WithIndex returns index as a key.
func (IntAxis[K]) WithIndex(_ K, index int) K { return K(index) }

// PointAxis shifts cell points along one axis.
type PointAxis models.Axis

// Index returns the coordinate of p along the axis.
func (a PointAxis) Index(p models.CellPoint) int { return p.Index(models.Axis(a)) }

// WithIndex moves p along the axis.
func (a PointAxis) WithIndex(p models.CellPoint, index int) models.CellPoint {
	return p.WithIndex(models.Axis(a), index)
}

// sortedKeys snapshots the map keys ordered by index.
func sortedKeys[K comparable, V any, A KeyAxis[K]](m map[K]V, axis A, descending bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		c := cmp.Compare(axis.Index(a), axis.Index(b))
		if descending {
			return -c
		}
		return c
	})
	return keys
}

// GrowKeys re-keys every entry at or after pivot by +amount. Keys are visited
// in descending order so a moved entry never lands on one not yet moved.
// Entries pushed past limit are removed and returned.
func GrowKeys[K comparable, V any, A KeyAxis[K]](m map[K]V, axis A, pivot, amount, limit int) []V {
	var dropped []V
	if amount <= 0 {
		return nil
	}
	for _, k := range sortedKeys(m, axis, true) {
		index := axis.Index(k)
		if index < pivot {
			break
		}
		v := m[k]
		delete(m, k)
		if next := index + amount; next <= limit {
			m[axis.WithIndex(k, next)] = v
		} else {
			dropped = append(dropped, v)
		}
	}
	return dropped
}

// ShrinkKeys removes entries inside [pivot, pivot+amount-1] and re-keys later
// entries by -amount, visiting keys in ascending order. Removed entries are returned.
func ShrinkKeys[K comparable, V any, A KeyAxis[K]](m map[K]V, axis A, pivot, amount int) []V {
	var dropped []V
	if amount <= 0 {
		return nil
	}
	end := pivot + amount - 1
	for _, k := range sortedKeys(m, axis, false) {
		index := axis.Index(k)
		if index < pivot {
			continue
		}
		v := m[k]
		delete(m, k)
		if index <= end {
			dropped = append(dropped, v)
			continue
		}
		m[axis.WithIndex(k, index-amount)] = v
	}
	return dropped
}

// TakeKeys removes and returns every entry whose index lies in [start, end].
func TakeKeys[K comparable, V any, A KeyAxis[K]](m map[K]V, axis A, start, end int) map[K]V {
	taken := make(map[K]V)
	for k, v := range m {
		if i := axis.Index(k); i >= start && i <= end {
			taken[k] = v
			delete(m, k)
		}
	}
	return taken
}
