package spectra

import (
	"errors"
	"fmt"
	"math"
)

// Default synthesis settings.
const (
	DefaultResolution = 0.5
	DefaultNoiseLevel = 0.005
)

// Errors returned by spectrum synthesis.
var (
	ErrInvalidRange       = errors.New("spectra: range low must be less than high")
	ErrInvalidResolution  = errors.New("spectra: frequency resolution must be positive")
	ErrNoiseLevel         = errors.New("spectra: noise level must not be negative")
	ErrSpectraCount       = errors.New("spectra: spectra count must be positive")
	ErrNilSource          = errors.New("spectra: parameter source must not be nil")
	ErrInsufficientParams = errors.New("spectra: parameter source exhausted before batch completed")
)

// Range is an inclusive frequency range in Hz.
type Range struct {
	Low  float64
	High float64
}

// Validate checks that the range is ordered.
func (r Range) Validate() error {
	if !(r.Low < r.High) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Low, r.High)
	}

	return nil
}

// Freqs builds a linear frequency axis over r with the given resolution.
// The axis starts at r.Low and steps by res; the upper bound is extended
// by one step so r.High itself is included under floating-point
// stepping. The last value is always >= r.High and < r.High+res.
func Freqs(r Range, res float64) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if res <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResolution, res)
	}

	// Half-open [Low, High+res) with a guard against a spurious extra
	// bin when the span is an exact multiple of res.
	n := int(math.Ceil((r.High+res-r.Low)/res - 1e-9))

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Low + float64(i)*res
	}

	return xs, nil
}

// SimParams records the parameters actually used to synthesize one
// spectrum of a batch. Peaks are grouped into (center, amplitude,
// bandwidth) triples and sorted ascending by center frequency.
type SimParams struct {
	Aperiodic  []float64
	Peaks      [][3]float64
	NoiseLevel float64
}
