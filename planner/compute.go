package planner

import "github.com/pathkit/dstarlite/numeric"

// compute is the repair loop (§4.5.5 in the design document). It
// repeatedly pops the queue's minimum-key cell and reconciles it,
// terminating successfully once the queue is empty or the top key is
// no better than key(start) with start already locally consistent.
// It fails only by exhausting maxSteps.
func (p *Planner) compute() bool {
	iterations := 0

	for {
		kOld, u, ok := p.open.Peek()
		if !ok {
			break
		}
		if !kOld.LessWith(p.cmp, p.key(p.start)) && p.cmp.Equal(p.rhs(p.start), p.g(p.start)) {
			break
		}
		if iterations >= maxSteps {
			p.lastComputeIterations = iterations
			return false
		}
		iterations++

		kNew := p.key(u)

		switch {
		case kOld.LessWith(p.cmp, kNew):
			// Stale key: the cell's priority changed since it was
			// queued (e.g. km advanced). Refresh and reconsider.
			p.open.Update(u, kNew)

		case p.cmp.Greater(p.g(u), p.rhs(u)):
			// Overconsistent: commit the improvement and propagate
			// it to neighbours.
			p.setG(u, p.rhs(u))
			p.open.Remove(u)

			for _, v := range u.Neighbors() {
				if v == nil {
					continue
				}
				if v != p.goal {
					p.setRhs(v, p.cmp.Min(p.rhs(v), p.cost(v, u)+p.g(u)))
				}
				p.reconcile(v)
			}

		default:
			// Underconsistent: retract the estimate and recompute
			// rhs from scratch, then propagate to neighbours. Each
			// neighbour's rhs is recomputed too, since it may have
			// been derived from u's retracted g.
			p.setG(u, numeric.Infinity)
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
	}

	p.lastComputeIterations = iterations
	return true
}
