package cartesian_test

import (
	"testing"

	"github.com/helluin912/Set-CartesianProduct-Lazy/cartesian"
)

// benchmarkGet is a helper that decodes indices round-robin over a
// product of dims dimensions of the given size each, using opts.
// It resets the timer before entering the loop and fails on unexpected
// errors.
func benchmarkGet(b *testing.B, dims, size int, opts ...cartesian.Option) {
	sets := make([]cartesian.Set[int], dims)
	for j := range sets {
		sets[j] = cartesian.IntRange{Lo: 0, Hi: size}
	}
	p, err := cartesian.New(sets, opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	count := p.Count()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = p.Get(i % count); err != nil {
			b.Fatalf("Get failed: %v", err)
		}
	}
}

// BenchmarkGet_LazySmall benchmarks Lazy mode over a 4-dimensional product.
func BenchmarkGet_LazySmall(b *testing.B) {
	benchmarkGet(b, 4, 8)
}

// BenchmarkGet_PrecomputedSmall benchmarks the frozen strides over the
// same 4-dimensional product.
func BenchmarkGet_PrecomputedSmall(b *testing.B) {
	benchmarkGet(b, 4, 8, cartesian.WithPrecompute())
}

// BenchmarkGet_LazyWide benchmarks Lazy mode over 12 dimensions, where
// per-call size resolution dominates.
func BenchmarkGet_LazyWide(b *testing.B) {
	benchmarkGet(b, 12, 4)
}

// BenchmarkGet_PrecomputedWide benchmarks the frozen strides over the
// same 12-dimensional product.
func BenchmarkGet_PrecomputedWide(b *testing.B) {
	benchmarkGet(b, 12, 4, cartesian.WithPrecompute())
}

// BenchmarkCount_Lazy measures live count resolution.
func BenchmarkCount_Lazy(b *testing.B) {
	sets := make([]cartesian.Set[int], 12)
	for j := range sets {
		sets[j] = cartesian.IntRange{Lo: 0, Hi: 4}
	}
	p, err := cartesian.New(sets)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Count()
	}
}
