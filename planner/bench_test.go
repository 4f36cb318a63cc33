package planner_test

import (
	"testing"

	"github.com/pathkit/dstarlite/core"
	"github.com/pathkit/dstarlite/planner"
)

// BenchmarkReplan measures a full Replan on a moderately sized open
// grid, then repeatedly punches a single obstacle and re-plans to
// measure the incremental repair path.
func BenchmarkReplan(b *testing.B) {
	const size = 64

	costs := make([][]float64, size)
	for y := range costs {
		row := make([]float64, size)
		for x := range row {
			row[x] = 1
		}
		costs[y] = row
	}
	g, err := core.NewGrid(costs)
	if err != nil {
		b.Fatal(err)
	}

	p, err := planner.New(g, g.At(0, 0), g.At(size-1, size-1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := (i%size/2)+1, (i%size/2)+1
		p.Update(g.At(x, y), core.UNWALKABLE)
		p.Replan()
		p.Update(g.At(x, y), 1)
	}
}
