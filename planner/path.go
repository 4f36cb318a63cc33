package planner

import (
	"github.com/pathkit/dstarlite/core"
	"github.com/pathkit/dstarlite/numeric"
)

// Replan runs the repair loop and, on success, walks the
// minimum-cost successor chain from start to goal, storing the
// result for Path. It returns false (leaving Path empty) if the step
// cap was hit, start is unreachable, or the successor walk finds no
// finite candidate at some cell.
func (p *Planner) Replan() bool {
	p.path = p.path[:0]

	if !p.compute() {
		return false
	}
	if p.cmp.Equal(p.g(p.start), numeric.Infinity) {
		return false
	}

	current := p.start
	p.path = append(p.path, current)

	for current != p.goal {
		successor := p.minSuccessor(current)
		if successor == nil {
			p.path = p.path[:0]
			return false
		}
		p.path = append(p.path, successor)
		current = successor
	}

	return true
}

// minSuccessor returns the non-nil neighbour v of u minimizing
// cost(u,v)+g(v), ignoring candidates where either term is infinite.
// It returns nil if no finite candidate exists. Ties are broken by
// neighbour array order, which is unspecified but deterministic.
func (p *Planner) minSuccessor(u *core.Cell) *core.Cell {
	var best *core.Cell
	minCost := numeric.Infinity

	for _, v := range u.Neighbors() {
		if v == nil {
			continue
		}
		c := p.cost(u, v)
		gv := p.g(v)
		if p.cmp.Equal(c, numeric.Infinity) || p.cmp.Equal(gv, numeric.Infinity) {
			continue
		}
		total := c + gv
		if p.cmp.Less(total, minCost) {
			minCost = total
			best = v
		}
	}

	return best
}
