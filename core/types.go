package core

// NumNeighbors is the fixed size of a Cell's neighbour array: eight,
// for a king-move grid (the four orthogonal directions plus the four
// diagonals).
const NumNeighbors = 8

// UNWALKABLE is the distinguished cost value denoting impassable
// terrain. It propagates as an infinite edge cost wherever either
// endpoint of a step carries it.
const UNWALKABLE = -1.0

// Cell is a single vertex of the planning grid: fixed integer
// coordinates, a mutable traversal cost, and a fixed-size neighbour
// list computed once at Grid construction time.
//
// A Cell's identity is its pointer; two Cells are the same cell iff
// they are the same *Cell. Boundary neighbour slots are nil.
type Cell struct {
	x, y      int
	cost      float64
	neighbors [NumNeighbors]*Cell
}

// X returns the cell's column coordinate.
func (c *Cell) X() int { return c.x }

// Y returns the cell's row coordinate.
func (c *Cell) Y() int { return c.y }

// Cost returns the cell's current traversal cost, or UNWALKABLE if
// the cell is impassable.
func (c *Cell) Cost() float64 { return c.cost }

// SetCost updates the cell's traversal cost. Grid.SetCost is the
// intended entry point for hosts; Cell.SetCost is exported so the
// planner's Update can mutate the grid it was constructed with
// without needing a back-reference to the Grid.
func (c *Cell) SetCost(cost float64) { c.cost = cost }

// Neighbors returns the cell's fixed-size neighbour array. Entries
// for directions that fall outside the grid boundary are nil.
func (c *Cell) Neighbors() [NumNeighbors]*Cell { return c.neighbors }
