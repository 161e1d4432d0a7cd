package periodic

import "testing"

func BenchmarkValues(b *testing.B) {
	cases := []struct {
		name  string
		bins  int
		peaks int
	}{
		{"99x1", 99, 1},
		{"99x4", 99, 4},
		{"10Kx4", 10000, 4},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			xs := make([]float64, tc.bins)
			for i := range xs {
				xs[i] = 1 + 0.5*float64(i)
			}

			flat := make([]float64, 0, tc.peaks*3)
			for p := 0; p < tc.peaks; p++ {
				flat = append(flat, 10+float64(p)*10, 1, 2)
			}

			b.ResetTimer()
			for range b.N {
				if _, err := Values(xs, flat); err != nil {
					b.Fatalf("Values() error = %v", err)
				}
			}
		})
	}
}
