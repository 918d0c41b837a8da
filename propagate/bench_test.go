package propagate_test

import (
	"math"
	"testing"

	"github.com/calder-lab/uncert/core"
	"github.com/calder-lab/uncert/correlation"
	"github.com/calder-lab/uncert/propagate"
)

// trig is the three-argument workload shared by the benchmarks.
func trig(a ...float64) float64 {
	return math.Sin(a[0]) * math.Cos(a[1]) * math.Tan(a[2])
}

var benchArgs = []core.Value{
	core.New(math.Pi/2, 0.01),
	core.New(math.Pi, 0.01),
	core.New(math.Pi/4, 0.01),
}

var sinkF float64

// BenchmarkPlainCall measures the bare function as a baseline.
func BenchmarkPlainCall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkF = trig(math.Pi/2, math.Pi, math.Pi/4)
	}
}

// BenchmarkIndependent measures propagation without correlations:
// k+1 = 4 evaluations of f plus the quadrature sum.
func BenchmarkIndependent(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, err := propagate.Independent(trig, benchArgs...)
		if err != nil {
			b.Fatalf("Independent failed: %v", err)
		}
		sinkF = u.Nominal()
	}
}

// BenchmarkWithMatrix adds the O(k²) coefficient lookups.
func BenchmarkWithMatrix(b *testing.B) {
	m, err := correlation.NewMatrix(3)
	if err != nil {
		b.Fatalf("NewMatrix failed: %v", err)
	}
	_ = m.Set(0, 1, 0.1)
	_ = m.Set(1, 2, -0.2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u, err := propagate.WithMatrix(trig, m, benchArgs...)
		if err != nil {
			b.Fatalf("WithMatrix failed: %v", err)
		}
		sinkF = u.Nominal()
	}
}

// BenchmarkWithStore includes identity resolution and write-back.
func BenchmarkWithStore(b *testing.B) {
	x := core.Tag(core.New(math.Pi/2, 0.01))
	y := core.Tag(core.New(math.Pi, 0.01))
	z := core.Tag(core.New(math.Pi/4, 0.01))
	store := correlation.NewStore()
	store.Set(x, y, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := propagate.WithStore(trig, store, x, y, z)
		if err != nil {
			b.Fatalf("WithStore failed: %v", err)
		}
		sinkF = res.Value.Nominal()
	}
}
