package spectra

import (
	"testing"

	"github.com/cwbudde/algo-specsim/sim/params"
)

func BenchmarkPowerValues(b *testing.B) {
	cases := []struct {
		name string
		r    Range
		res  float64
	}{
		{"99", Range{Low: 1, High: 50}, 0.5},
		{"1K", Range{Low: 1, High: 100}, 0.1},
		{"10K", Range{Low: 1, High: 1000}, 0.1},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			g := NewGenerator()
			xs, err := Freqs(tc.r, tc.res)
			if err != nil {
				b.Fatalf("Freqs() error = %v", err)
			}

			b.ResetTimer()
			for range b.N {
				if _, err := g.PowerValues(xs, []float64{0, 2}, []float64{10, 1, 1}, 0.005); err != nil {
					b.Fatalf("PowerValues() error = %v", err)
				}
			}
		})
	}
}

func BenchmarkGroup(b *testing.B) {
	counts := []struct {
		name string
		n    int
	}{
		{"10", 10},
		{"100", 100},
	}

	for _, tc := range counts {
		b.Run(tc.name, func(b *testing.B) {
			g := NewGenerator()

			b.ResetTimer()
			for range b.N {
				_, _, _, err := g.Group(tc.n, Range{Low: 1, High: 50},
					params.Fixed([]float64{0, 2}),
					params.Fixed([]float64{10, 1, 1}),
					params.Fixed(DefaultNoiseLevel))
				if err != nil {
					b.Fatalf("Group() error = %v", err)
				}
			}
		})
	}
}
