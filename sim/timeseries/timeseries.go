// Package timeseries turns a simulated power spectrum into a
// time-domain realization via random-phase inverse FFT synthesis.
//
// Each spectrum bin becomes a spectral line with magnitude sqrt(power)
// and a uniformly random phase; Hermitian symmetry makes the inverse
// transform real. The realization's spectral shape follows the input
// spectrum; absolute scale depends on the FFT length and is best
// treated as relative.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by time-series synthesis.
var (
	ErrLengthMismatch = errors.New("timeseries: freqs and powers must have equal length")
	ErrTooFewBins     = errors.New("timeseries: need at least two spectrum bins")
	ErrBinSpacing     = errors.New("timeseries: frequency bins must be evenly spaced and increasing")
	ErrNegativePower  = errors.New("timeseries: power values must not be negative")
	ErrFFTSize        = errors.New("timeseries: fft size must be a power of two large enough for the spectrum")
	ErrEmptySignal    = errors.New("timeseries: signal must not be empty")
	ErrTargetPeak     = errors.New("timeseries: target peak must be positive")
)

// Config controls time-series synthesis.
type Config struct {
	// FFTSize is the synthesis FFT length. Zero selects the smallest
	// power of two that can hold the spectrum's highest frequency bin.
	FFTSize int
	// Seed fixes the random phases for reproducible realizations.
	Seed int64
}

// FromSpectrum synthesizes a real time series of length FFTSize whose
// power spectral density follows the given one-sided spectrum. The
// returned sample rate is FFTSize times the spectrum's bin spacing.
func FromSpectrum(freqs, powers []float64, cfg Config) (signal []float64, sampleRate float64, err error) {
	if len(freqs) != len(powers) {
		return nil, 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(freqs), len(powers))
	}
	if len(freqs) < 2 {
		return nil, 0, ErrTooFewBins
	}

	df := freqs[1] - freqs[0]
	if df <= 0 {
		return nil, 0, ErrBinSpacing
	}
	for i := 1; i < len(freqs); i++ {
		if math.Abs((freqs[i]-freqs[i-1])-df) > 1e-9*df {
			return nil, 0, fmt.Errorf("%w: step %v at bin %d, want %v", ErrBinSpacing, freqs[i]-freqs[i-1], i, df)
		}
	}

	maxBin := int(math.Round(freqs[len(freqs)-1] / df))
	fftSize := cfg.FFTSize
	if fftSize == 0 {
		fftSize = nextPowerOf2(2 * (maxBin + 1))
	}
	if fftSize&(fftSize-1) != 0 || fftSize/2 <= maxBin {
		return nil, 0, fmt.Errorf("%w: size %d, highest bin %d", ErrFFTSize, fftSize, maxBin)
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)))

	spectrum := make([]complex128, fftSize)
	for i, p := range powers {
		if p < 0 {
			return nil, 0, fmt.Errorf("%w: %v at bin %d", ErrNegativePower, p, i)
		}

		bin := int(math.Round(freqs[i] / df))
		if bin == 0 {
			// DC must stay real.
			spectrum[0] = complex(math.Sqrt(p), 0)
			continue
		}

		line := cmplx.Rect(math.Sqrt(p), 2*math.Pi*rng.Float64())
		spectrum[bin] = line
		spectrum[fftSize-bin] = cmplx.Conj(line)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("timeseries: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, 0, fmt.Errorf("timeseries: inverse FFT failed: %w", err)
	}

	signal = make([]float64, fftSize)
	for i := range signal {
		signal[i] = real(out[i])
	}

	return signal, float64(fftSize) * df, nil
}

// Normalize scales the signal in place to the target peak amplitude.
// A silent signal is left untouched.
func Normalize(signal []float64, targetPeak float64) error {
	if len(signal) == 0 {
		return ErrEmptySignal
	}
	if targetPeak <= 0 {
		return fmt.Errorf("%w: %v", ErrTargetPeak, targetPeak)
	}

	maxAbs := 0.0
	for _, v := range signal {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}
	if maxAbs == 0 {
		return nil
	}

	floats.Scale(targetPeak/maxAbs, signal)

	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
