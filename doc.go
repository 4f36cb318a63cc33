// Package dstarlite is your incremental-replanning toolkit for
// navigation on a partially-known cellular grid.
//
// 🚀 What is dstarlite?
//
//	A small, dependency-light module implementing D* Lite (Koenig &
//	Likhachev's "final, optimised" version) for king-move grids:
//		• Cell substrate: a dense, mutable-cost 8-connected grid
//		• Two-key priority queue with an O(1) reverse index
//		• The incremental search engine: compute / update / replan
//
// ✨ Why choose dstarlite?
//
//   - Repairs, not recomputes — a single cost change is patched in
//     time proportional to the affected region, not the whole grid.
//   - Pure Go — no cgo, minimal dependencies.
//   - Small surface — four packages, each independently importable.
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/ — tolerant float predicates, √2, and the infinity sentinel
//	core/    — the Cell/Grid substrate the planner searches over
//	queue/   — the two-key priority queue with reverse index
//	planner/ — the D* Lite engine and its driver surface
//
// Quick usage:
//
//	grid, _ := core.NewGrid(costs)
//	p, _ := planner.New(grid, start, goal)
//	ok := p.Replan()
//	path := p.Path()
//	p.Update(changedCell, core.UNWALKABLE)
//	ok = p.Replan()
//
// See the planner package for the full driver-surface documentation.
package dstarlite
