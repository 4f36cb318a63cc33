// Package planner implements D* Lite (Koenig & Likhachev's "final,
// optimised" version) for incremental shortest-path replanning on a
// king-move core.Grid.
//
// Overview:
//
//   - Planner computes a least-cost path from a moving start Cell to
//     a fixed goal Cell, maintaining a pair of estimates (g, rhs) per
//     visited Cell and an open queue ordered by a two-component key.
//   - When the host learns that a cell's traversal cost changed, it
//     calls Update; the next Replan repairs only the affected region
//     instead of recomputing the whole grid from scratch.
//
// Complexity:
//
//   - Each Replan call runs the repair loop for at most a bounded
//     number of iterations (maxSteps), each O(log n) in the number of
//     cells currently on the open queue.
//   - Space is O(k) where k is the number of cells touched so far in
//     the episode; the state store never shrinks during an episode.
//
// Errors (sentinel):
//
//   - ErrNilGrid: New was given a nil *core.Grid.
//   - ErrStartOutOfBounds / ErrGoalOutOfBounds: start or goal is nil
//     (i.e. outside the grid the caller obtained it from).
//   - ErrGoalUnwalkable: the goal cell's cost is core.UNWALKABLE.
//
// Changing the goal is not supported after construction: rhs(goal)=0
// and the km accumulator are anchored to the goal given to New, and
// re-anchoring them mid-episode is not part of this algorithm's
// contract. Construct a new Planner instead.
//
// New accepts functional Options (WithComparator, WithQueueCapacity)
// the same way the graph toolkit's dijkstra.Option family does. With
// none supplied, the engine's tolerance defaults to the grid's own
// Comparator.
package planner
