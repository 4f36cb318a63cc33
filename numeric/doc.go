// Package numeric provides tolerant floating-point predicates shared
// by the grid substrate, the priority queue, and the search engine.
//
// Strict equality on doubles would cause the consistency check in the
// planner's compute loop and the priority queue's key ordering to
// diverge, so every estimate and key comparison in this module routes
// through Equal, Less, or Greater instead of Go's built-in operators.
// Checks against the exact UNWALKABLE sentinel cost use ==.
package numeric
