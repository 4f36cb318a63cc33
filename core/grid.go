package core

import "github.com/pathkit/dstarlite/numeric"

// neighborOffsets lists the eight king-move directions in a fixed
// order: N, NE, E, SE, S, SW, W, NW. This mirrors the Conn8 offset
// table used to build a general graph's diagonal adjacency, fixed
// here because the spec's heuristic assumes exactly this topology.
var neighborOffsets = [NumNeighbors][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Options configures a Grid at construction time.
type Options struct {
	// Comparator controls the tolerance NewGrid and SetCost use when
	// recognising a supplied cost as UNWALKABLE. Defaults to
	// numeric.DefaultComparator.
	Comparator numeric.Comparator
}

// Option configures a Grid via NewGrid.
type Option func(*Options)

// WithComparator overrides the tolerance used to canonicalise costs
// to UNWALKABLE. A cost computed upstream (e.g. summed from several
// terrain layers) can drift a few ULPs from -1.0 without this.
func WithComparator(cmp numeric.Comparator) Option {
	return func(o *Options) {
		o.Comparator = cmp
	}
}

// defaultOptions returns the Options NewGrid uses when called with no
// overrides.
func defaultOptions() Options {
	return Options{Comparator: numeric.DefaultComparator}
}

// Grid is a dense, rectangular, 8-connected king-move grid of Cells.
// It is immutable in topology once built: only a Cell's Cost may
// change afterwards, via SetCost.
type Grid struct {
	width, height int
	cells         [][]*Cell // cells[y][x]
	cmp           numeric.Comparator
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of
// per-cell traversal costs. The input is deep-copied into Cells, so
// later mutation of costs by the caller has no effect on the Grid.
//
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(costs [][]float64, opts ...Option) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{width: w, height: h, cmp: o.Comparator}

	g.cells = make([][]*Cell, h)
	for y := 0; y < h; y++ {
		g.cells[y] = make([]*Cell, w)
		for x := 0; x < w; x++ {
			g.cells[y][x] = &Cell{x: x, y: y, cost: g.canonicalize(costs[y][x])}
		}
	}
	g.linkNeighbors()

	return g, nil
}

// canonicalize snaps cost to the exact UNWALKABLE sentinel when it
// falls within the grid's comparator tolerance of it, so that the
// exact equality checks the search engine performs against UNWALKABLE
// stay correct even when a caller's cost has drifted a little from
// -1.0.
func (g *Grid) canonicalize(cost float64) float64 {
	if g.cmp.Equal(cost, UNWALKABLE) {
		return UNWALKABLE
	}
	return cost
}

// linkNeighbors populates each Cell's fixed-size neighbour array once,
// so Cell.Neighbors is O(1) for the lifetime of the Grid.
func (g *Grid) linkNeighbors() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y][x]
			for i, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				c.neighbors[i] = g.cells[ny][nx]
			}
		}
	}
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the Cell at (x, y), or nil if out of bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows in the grid.
func (g *Grid) Height() int { return g.height }

// Comparator returns the tolerance the grid uses to recognise a
// supplied cost as UNWALKABLE. A Planner built over this grid without
// an explicit WithComparator override adopts it as its own default,
// keeping the grid's and the search engine's tolerances in step.
func (g *Grid) Comparator() numeric.Comparator { return g.cmp }

// SetCost updates the traversal cost of the cell at (x, y). It is a
// no-op if (x, y) is out of bounds.
func (g *Grid) SetCost(x, y int, cost float64) {
	if c := g.At(x, y); c != nil {
		c.SetCost(g.canonicalize(cost))
	}
}
