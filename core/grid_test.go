package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathkit/dstarlite/core"
	"github.com/pathkit/dstarlite/numeric"
)

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]float64
		err   error
	}{
		{"EmptyRows", [][]float64{}, core.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, core.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 1}, {1}}, core.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGrid(tc.costs)
			assert.True(t, errors.Is(err, tc.err))
		})
	}
}

func TestNewGrid_Dimensions(t *testing.T) {
	g, err := core.NewGrid([][]float64{
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
}

func TestGrid_DeepCopiesInput(t *testing.T) {
	costs := [][]float64{{1, 1}, {1, 1}}
	g, err := core.NewGrid(costs)
	require.NoError(t, err)

	costs[0][0] = 99
	assert.Equal(t, 1.0, g.At(0, 0).Cost())
}

func TestGrid_NeighborsInterior(t *testing.T) {
	g, err := core.NewGrid([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	center := g.At(1, 1)
	nbrs := center.Neighbors()
	for i, n := range nbrs {
		assert.NotNil(t, n, "interior neighbor %d should not be nil", i)
	}
}

func TestGrid_NeighborsCornerAreBoundaryNil(t *testing.T) {
	g, err := core.NewGrid([][]float64{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)

	corner := g.At(0, 0)
	nbrs := corner.Neighbors()
	nonNil := 0
	for _, n := range nbrs {
		if n != nil {
			nonNil++
		}
	}
	// A 2×2 grid's corner has exactly 3 valid king-move neighbours:
	// E, S, SE.
	assert.Equal(t, 3, nonNil)
}

func TestGrid_SetCost(t *testing.T) {
	g, err := core.NewGrid([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	g.SetCost(1, 1, core.UNWALKABLE)
	assert.Equal(t, core.UNWALKABLE, g.At(1, 1).Cost())

	// Out of bounds is a no-op, not a panic.
	g.SetCost(99, 99, 5)
}

func TestGrid_WithComparator_CanonicalizesNearUnwalkable(t *testing.T) {
	loose := numeric.NewComparator(1e-3)
	g, err := core.NewGrid([][]float64{{1, core.UNWALKABLE + 1e-6}}, core.WithComparator(loose))
	require.NoError(t, err)

	assert.Equal(t, core.UNWALKABLE, g.At(1, 0).Cost())

	g.SetCost(0, 0, core.UNWALKABLE+1e-6)
	assert.Equal(t, core.UNWALKABLE, g.At(0, 0).Cost())
}

func TestGrid_Comparator_DefaultsToPackageDefault(t *testing.T) {
	g, err := core.NewGrid([][]float64{{1}})
	require.NoError(t, err)
	assert.Equal(t, numeric.DefaultComparator, g.Comparator())
}

func TestGrid_AtOutOfBoundsReturnsNil(t *testing.T) {
	g, err := core.NewGrid([][]float64{{1}})
	require.NoError(t, err)

	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(0, -1))
	assert.Nil(t, g.At(5, 0))
}
