// Package core defines the grid cell substrate the D* Lite search
// engine consumes: Cell, the dense king-move Grid that owns Cells,
// and the UNWALKABLE cost sentinel.
//
// A Grid is built once from a rectangular 2D slice of per-cell
// traversal costs (NewGrid deep-copies the input, so later mutation
// of the caller's slice has no effect). Unlike a general-purpose
// graph, a Grid's topology never changes after construction — only a
// Cell's Cost field is mutable, exclusively through SetCost. Every
// Cell always exposes exactly NumNeighbors neighbour slots, computed
// once at construction time; slots that fall outside the grid
// boundary are nil.
//
// NewGrid accepts functional Options (WithComparator) the same way
// the graph toolkit's dijkstra.Option and core.GraphOption families
// do; the default tolerance is numeric.DefaultComparator.
//
// Errors:
//
//	ErrEmptyGrid      - the input has no rows or no columns.
//	ErrNonRectangular - rows of differing lengths.
package core
