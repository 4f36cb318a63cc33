package planner

import (
	"github.com/pathkit/dstarlite/core"
	"github.com/pathkit/dstarlite/numeric"
	"github.com/pathkit/dstarlite/queue"
)

// maxSteps bounds the repair loop. 10^6 is sufficient for grids up to
// roughly 10^4 cells; exceeding it means the search has diverged or
// the goal is genuinely unreachable in a way the loop cannot resolve,
// and Replan reports failure rather than spinning forever.
const maxSteps = 1_000_000

// Options configures a Planner at construction time.
type Options struct {
	// Comparator controls the tolerance used for every g/rhs and key
	// comparison the engine makes. Defaults to the grid's own
	// Comparator, so a Grid built with WithComparator and a Planner
	// built over it agree on tolerance without repeating the override.
	Comparator numeric.Comparator
	// QueueCapacity preallocates the open queue's backing heap, for
	// hosts that know roughly how large the open set will grow.
	QueueCapacity int
}

// Option configures a Planner via New.
type Option func(*Options)

// WithComparator overrides the tolerance used for the engine's g/rhs
// and key comparisons. Chiefly useful in tests that need to force
// otherwise-tied estimates apart, or together.
func WithComparator(cmp numeric.Comparator) Option {
	return func(o *Options) {
		o.Comparator = cmp
	}
}

// WithQueueCapacity preallocates the open queue's backing heap to
// hold n entries.
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		o.QueueCapacity = n
	}
}

// defaultOptions returns the Options New uses before applying opts,
// seeded from grid's own Comparator.
func defaultOptions(grid *core.Grid) Options {
	return Options{Comparator: grid.Comparator()}
}

// estimate is the (g, rhs) pair the search engine maintains for a
// cell. g is the best known committed cost-to-goal; rhs is the
// one-step-lookahead estimate derived from neighbours.
type estimate struct {
	g, rhs float64
}

// Stats is a read-only snapshot of the search engine's internal
// bookkeeping, exposed purely for host-side observability. It has no
// bearing on any control-flow decision in the engine itself.
type Stats struct {
	// ComputeIterations is the number of repair-loop iterations the
	// most recent Replan call consumed.
	ComputeIterations int
	// MaterializedCells is the number of cells currently touched in
	// the state store.
	MaterializedCells int
	// OpenCells is the number of cells currently on the open queue.
	OpenCells int
}

// Planner is the D* Lite incremental search engine and driver
// surface. It borrows the *core.Grid it was constructed with (it does
// not own Cells) and owns its own state store, open queue, and path
// buffer.
//
// Planner is not safe for concurrent use; a host that shares one
// across goroutines must synchronize externally.
type Planner struct {
	grid  *core.Grid
	start *core.Cell
	goal  *core.Cell
	last  *core.Cell
	km    float64

	cmp numeric.Comparator

	estimates map[*core.Cell]*estimate
	open      *queue.Queue[*core.Cell]
	path      []*core.Cell

	lastComputeIterations int
}
