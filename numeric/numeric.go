package numeric

import "math"

// Epsilon is the default tolerance below which two float64 values are
// considered equal. 1e-5 is sufficient for grid costs and heuristic
// values computed from small integer coordinates.
const Epsilon = 1e-5

// Sqrt2 is the precomputed diagonal step cost for a king-move grid.
var Sqrt2 = math.Sqrt2

// Infinity is the sentinel "unreachable" cost/estimate value.
var Infinity = math.Inf(1)

// Comparator holds the tolerance used to compare float64 values that
// are otherwise expected to be equal up to accumulated floating-point
// error. Construct one with NewComparator, or use DefaultComparator.
type Comparator struct {
	Epsilon float64
}

// DefaultComparator compares under the package's default Epsilon.
var DefaultComparator = Comparator{Epsilon: Epsilon}

// NewComparator returns a Comparator using epsilon as its tolerance.
// A non-positive epsilon falls back to the package default, since
// zero tolerance would make Equal degenerate to ==, defeating the
// purpose of tolerant comparison for costs and heuristics derived
// from irrational values such as √2.
func NewComparator(epsilon float64) Comparator {
	if epsilon <= 0 {
		epsilon = Epsilon
	}
	return Comparator{Epsilon: epsilon}
}

// Equal reports whether a and b are within c's tolerance of each
// other. Exact equality is checked first so that two infinities of
// the same sign compare equal: Inf - Inf is NaN, which would
// otherwise make every comparison involving Infinity report false.
func (c Comparator) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < c.Epsilon
}

// Less reports whether a is strictly less than b outside of c's
// tolerance.
func (c Comparator) Less(a, b float64) bool {
	return !c.Equal(a, b) && a < b
}

// Greater reports whether a is strictly greater than b outside of c's
// tolerance.
func (c Comparator) Greater(a, b float64) bool {
	return !c.Equal(a, b) && a > b
}

// Min returns the smaller of a and b under c's tolerant ordering.
// Ties return a.
func (c Comparator) Min(a, b float64) float64 {
	if c.Less(b, a) {
		return b
	}
	return a
}

// Equal reports whether a and b are within Epsilon of each other,
// under DefaultComparator.
func Equal(a, b float64) bool { return DefaultComparator.Equal(a, b) }

// Less reports whether a is strictly less than b outside of Epsilon
// tolerance, under DefaultComparator.
func Less(a, b float64) bool { return DefaultComparator.Less(a, b) }

// Greater reports whether a is strictly greater than b outside of
// Epsilon tolerance, under DefaultComparator.
func Greater(a, b float64) bool { return DefaultComparator.Greater(a, b) }

// Min returns the smaller of a and b under tolerant ordering, under
// DefaultComparator. Ties return a.
func Min(a, b float64) float64 { return DefaultComparator.Min(a, b) }
