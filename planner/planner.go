package planner

import (
	"github.com/pathkit/dstarlite/core"
	"github.com/pathkit/dstarlite/numeric"
	"github.com/pathkit/dstarlite/queue"
)

// New constructs a Planner over grid with the given start and goal
// cells and runs initialisation: km is zeroed, the state store and
// open queue start empty, rhs(goal) is pinned to 0, and goal is
// inserted into the open queue.
//
// start and goal must be Cells obtained from grid (e.g. via
// grid.At(x, y)); a nil value is treated as out of bounds.
//
// With no Options, the engine's tolerance is inherited from grid's
// own Comparator; WithComparator overrides it explicitly.
func New(grid *core.Grid, start, goal *core.Cell, opts ...Option) (*Planner, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if start == nil {
		return nil, ErrStartOutOfBounds
	}
	if goal == nil {
		return nil, ErrGoalOutOfBounds
	}
	if goal.Cost() == core.UNWALKABLE {
		return nil, ErrGoalUnwalkable
	}

	o := defaultOptions(grid)
	for _, opt := range opts {
		opt(&o)
	}

	p := &Planner{
		grid:      grid,
		start:     start,
		goal:      goal,
		last:      start,
		km:        0,
		cmp:       o.Comparator,
		estimates: make(map[*core.Cell]*estimate),
		open:      queue.New[*core.Cell](queue.WithComparator(o.Comparator), queue.WithCapacity(o.QueueCapacity)),
	}

	p.reconcile(p.goal)

	return p, nil
}

// Start returns the planner's current start cell.
func (p *Planner) Start() *core.Cell { return p.start }

// SetStart updates the planner's start cell. It does not itself
// trigger any replanning; call Replan afterwards to obtain a path
// from the new start.
func (p *Planner) SetStart(u *core.Cell) { p.start = u }

// Goal returns the planner's goal cell. There is no SetGoal: rhs(goal)
// and the km accumulator are anchored to the goal given to New, so
// changing goals requires constructing a new Planner.
func (p *Planner) Goal() *core.Cell { return p.goal }

// KM returns the current km accumulator, the running compensation for
// heuristic drift induced by start-cell motion.
func (p *Planner) KM() float64 { return p.km }

// Path returns a copy of the path computed by the most recent
// successful Replan call, or an empty slice if the last Replan failed
// (or none has been called yet).
func (p *Planner) Path() []*core.Cell {
	out := make([]*core.Cell, len(p.path))
	copy(out, p.path)
	return out
}

// Stats returns a snapshot of the engine's internal bookkeeping.
func (p *Planner) Stats() Stats {
	return Stats{
		ComputeIterations: p.lastComputeIterations,
		MaterializedCells: len(p.estimates),
		OpenCells:         p.open.Len(),
	}
}

// Update notifies the planner that u's traversal cost has become
// newCost. It is a no-op if u is the goal.
//
// The state store's cached rhs for u and for each of u's neighbours
// is refreshed from the new cost before queue membership is
// reconciled: a cost change alters every edge incident to u, and a
// cell that was already locally consistent under its old cached rhs
// would otherwise never re-enter the open queue. See DESIGN.md for
// the rationale.
func (p *Planner) Update(u *core.Cell, newCost float64) {
	if u == p.goal {
		return
	}

	p.km += p.h(p.last, p.start)
	p.last = p.start

	p.g(u) // ensure u is materialised in the state store
	u.SetCost(newCost)

	p.recomputeRhs(u)
	p.reconcile(u)
	for _, v := range u.Neighbors() {
		if v == nil {
			continue
		}
		p.recomputeRhs(v)
		p.reconcile(v)
	}
}

// g returns g(u), materialising it to (∞, ∞) on first touch.
func (p *Planner) g(u *core.Cell) float64 {
	return p.ensure(u).g
}

// setG sets g(u) := v.
func (p *Planner) setG(u *core.Cell, v float64) {
	p.ensure(u).g = v
}

// rhs returns rhs(u): 0 if u is the goal, otherwise the stored value,
// materialising it to (∞, ∞) on first touch.
func (p *Planner) rhs(u *core.Cell) float64 {
	if u == p.goal {
		return 0
	}
	return p.ensure(u).rhs
}

// setRhs sets rhs(u) := v. It is a no-op for the goal, whose rhs is
// pinned to 0.
func (p *Planner) setRhs(u *core.Cell, v float64) {
	if u == p.goal {
		return
	}
	p.ensure(u).rhs = v
}

// ensure returns u's estimate, materialising (∞, ∞) on first touch.
func (p *Planner) ensure(u *core.Cell) *estimate {
	e, ok := p.estimates[u]
	if !ok {
		e = &estimate{g: numeric.Infinity, rhs: numeric.Infinity}
		p.estimates[u] = e
	}
	return e
}

// h is the consistent, admissible heuristic for a king-move grid:
// (√2 - 1)·min(|dx|, |dy|) + max(|dx|, |dy|).
func (p *Planner) h(a, b *core.Cell) float64 {
	dx := abs(a.X() - b.X())
	dy := abs(a.Y() - b.Y())
	mn, mx := dx, dy
	if mx < mn {
		mn, mx = mx, mn
	}
	return (numeric.Sqrt2-1)*float64(mn) + float64(mx)
}

// key computes k(u) = (min(g,rhs) + h(start,u) + km, min(g,rhs)).
func (p *Planner) key(u *core.Cell) queue.Key {
	m := p.cmp.Min(p.g(u), p.rhs(u))
	return queue.Key{K1: m + p.h(p.start, u) + p.km, K2: m}
}

// cost computes the edge cost between adjacent cells a and b: infinite
// if either is UNWALKABLE, otherwise scale·(a.cost+b.cost)/2 where
// scale is √2 for a diagonal step and 1 for an orthogonal one.
func (p *Planner) cost(a, b *core.Cell) float64 {
	if a.Cost() == core.UNWALKABLE || b.Cost() == core.UNWALKABLE {
		return numeric.Infinity
	}
	dx := abs(a.X() - b.X())
	dy := abs(a.Y() - b.Y())
	scale := 1.0
	if dx+dy > 1 {
		scale = numeric.Sqrt2
	}
	return scale * (a.Cost() + b.Cost()) / 2
}

// recomputeRhs recomputes rhs(u) from scratch as the minimum, over
// u's non-nil neighbours v, of cost(u,v)+g(v). It is a no-op for the
// goal, whose rhs is pinned to 0.
func (p *Planner) recomputeRhs(u *core.Cell) {
	if u == p.goal {
		return
	}
	minCost := numeric.Infinity
	for _, v := range u.Neighbors() {
		if v == nil {
			continue
		}
		c := p.cost(u, v) + p.g(v)
		if p.cmp.Less(c, minCost) {
			minCost = c
		}
	}
	p.setRhs(u, minCost)
}

// reconcile is _update(u): it reconciles u's open-queue membership
// with its local consistency, inserting, updating, or removing it as
// needed.
func (p *Planner) reconcile(u *core.Cell) {
	inconsistent := !p.cmp.Equal(p.g(u), p.rhs(u))
	present := p.open.Contains(u)

	switch {
	case inconsistent && present:
		p.open.Update(u, p.key(u))
	case inconsistent && !present:
		p.open.Insert(u, p.key(u))
	case !inconsistent && present:
		p.open.Remove(u)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
