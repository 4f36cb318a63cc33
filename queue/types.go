package queue

import "github.com/pathkit/dstarlite/numeric"

// Key is the two-component priority used to order the open set.
// K1 dominates; K2 breaks ties on K1. Both components compare under
// numeric.Equal/Less/Greater rather than Go's built-in operators, so
// values within numeric.Epsilon of each other are considered tied.
type Key struct {
	K1 float64
	K2 float64
}

// Less reports whether k is strictly ordered before other under
// tolerant lexicographic comparison, using numeric.DefaultComparator.
func (k Key) Less(other Key) bool {
	return k.LessWith(numeric.DefaultComparator, other)
}

// LessWith reports whether k is strictly ordered before other under
// tolerant lexicographic comparison, using cmp's tolerance. A Queue
// constructed with WithComparator orders its heap by this method
// rather than by Less.
func (k Key) LessWith(cmp numeric.Comparator, other Key) bool {
	if cmp.Less(k.K1, other.K1) {
		return true
	}
	if cmp.Greater(k.K1, other.K1) {
		return false
	}
	return cmp.Less(k.K2, other.K2)
}

// item is a queue entry: the stored value, its current key, and its
// current position in the backing heap slice. index lets Remove and
// Update locate the entry in O(1) via the reverse index, then fix the
// heap in O(log n).
type item[T comparable] struct {
	value T
	key   Key
	index int
}
