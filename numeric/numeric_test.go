package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathkit/dstarlite/numeric"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.0, 1.0, true},
		{"withinEpsilon", 1.0, 1.0 + numeric.Epsilon/2, true},
		{"outsideEpsilon", 1.0, 1.1, false},
		{"bothInfinite", numeric.Infinity, numeric.Infinity, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numeric.Equal(tc.a, tc.b))
		})
	}
}

func TestLessGreater(t *testing.T) {
	assert.True(t, numeric.Less(1.0, 2.0))
	assert.False(t, numeric.Less(1.0, 1.0+numeric.Epsilon/2))
	assert.True(t, numeric.Greater(2.0, 1.0))
	assert.False(t, numeric.Greater(1.0, 1.0+numeric.Epsilon/2))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1.0, numeric.Min(1.0, 2.0))
	assert.Equal(t, 1.0, numeric.Min(2.0, 1.0))
	// Tied within epsilon: Min returns a.
	assert.Equal(t, 1.0, numeric.Min(1.0, 1.0+numeric.Epsilon/2))
}

func TestInfinityIsIEEEInfinity(t *testing.T) {
	assert.True(t, math.IsInf(numeric.Infinity, 1))
}

func TestComparator_CustomEpsilon(t *testing.T) {
	loose := numeric.NewComparator(0.5)
	assert.True(t, loose.Equal(1.0, 1.4))
	assert.False(t, loose.Equal(1.0, 1.6))

	tight := numeric.NewComparator(1e-9)
	assert.False(t, tight.Equal(1.0, 1.0+numeric.Epsilon/2))

	// A non-positive epsilon falls back to the package default rather
	// than degenerating Equal into ==.
	fallback := numeric.NewComparator(0)
	assert.True(t, fallback.Equal(1.0, 1.0+numeric.Epsilon/2))
}

func TestComparator_InfinityStillEqual(t *testing.T) {
	cmp := numeric.NewComparator(1e-9)
	assert.True(t, cmp.Equal(numeric.Infinity, numeric.Infinity))
}
