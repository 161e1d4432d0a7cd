// Package periodic evaluates the periodic component of a power spectrum:
// a sum of Gaussian peaks in log10-power space, each described by a
// (center frequency, amplitude, bandwidth) triple.
package periodic

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrParamCount indicates a flat peak parameter list whose length is not
// a multiple of three.
var ErrParamCount = errors.New("periodic: peak parameters must come in (center, amplitude, bandwidth) triples")

// Gaussian evaluates a single Gaussian bump over xs:
//
//	amplitude * exp(-(x-center)^2 / (2*bandwidth^2))
func Gaussian(xs []float64, center, amplitude, bandwidth float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		d := x - center
		out[i] = amplitude * math.Exp(-d*d/(2*bandwidth*bandwidth))
	}

	return out
}

// Values evaluates the summed peak component over xs from a flat
// parameter list of consecutive (center, amplitude, bandwidth) triples.
// An empty list yields an all-zero result of the same length as xs.
func Values(xs, flat []float64) ([]float64, error) {
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrParamCount, len(flat))
	}

	out := make([]float64, len(xs))
	for p := 0; p < len(flat); p += 3 {
		center, amplitude, bandwidth := flat[p], flat[p+1], flat[p+2]
		for i, x := range xs {
			d := x - center
			out[i] += amplitude * math.Exp(-d*d/(2*bandwidth*bandwidth))
		}
	}

	return out, nil
}

// Flatten concatenates grouped peak parameters into a single flat list.
// It is the normalizer for callers holding one group per peak.
func Flatten(groups [][]float64) []float64 {
	n := 0
	for _, g := range groups {
		n += len(g)
	}

	flat := make([]float64, 0, n)
	for _, g := range groups {
		flat = append(flat, g...)
	}

	return flat
}

// GroupTriples splits a flat parameter list into (center, amplitude,
// bandwidth) triples.
func GroupTriples(flat []float64) ([][3]float64, error) {
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrParamCount, len(flat))
	}

	groups := make([][3]float64, 0, len(flat)/3)
	for p := 0; p < len(flat); p += 3 {
		groups = append(groups, [3]float64{flat[p], flat[p+1], flat[p+2]})
	}

	return groups, nil
}

// SortGroups orders peak triples ascending by center frequency, breaking
// ties on amplitude, then bandwidth. This is the canonical reporting
// order for parameter records.
func SortGroups(groups [][3]float64) {
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
}
