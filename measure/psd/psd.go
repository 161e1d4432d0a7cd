// Package psd estimates power spectral densities of time-domain
// signals using Welch's method. It is the measurement counterpart to
// sim/timeseries: realize a simulated spectrum, then estimate its PSD
// to compare against the model it came from.
package psd

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/spectral"
)

// Errors returned by PSD estimation.
var (
	ErrEmptySignal       = errors.New("psd: signal must not be empty")
	ErrInvalidSampleRate = errors.New("psd: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("psd: fft size must be positive")
	ErrInvalidOverlap    = errors.New("psd: overlap must not be negative")
)

type config struct {
	fftSize int
	overlap int
}

// Option configures PSD estimation.
type Option func(*config)

// WithFFTSize sets the segment FFT length (default 256).
func WithFFTSize(n int) Option {
	return func(c *config) {
		c.fftSize = n
	}
}

// WithOverlap sets the number of overlapping samples between segments
// (default half the FFT length).
func WithOverlap(n int) Option {
	return func(c *config) {
		c.overlap = n
	}
}

// Estimate computes a one-sided Welch PSD estimate of the signal.
// It returns the frequency axis in Hz and the estimated power per bin.
func Estimate(signal []float64, sampleRate float64, opts ...Option) (freqs, pxx []float64, err error) {
	if len(signal) == 0 {
		return nil, nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := config{fftSize: 256}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.fftSize <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.fftSize)
	}
	if cfg.overlap < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidOverlap, cfg.overlap)
	}
	if cfg.overlap == 0 {
		cfg.overlap = cfg.fftSize / 2
	}

	pxx, freqs = spectral.Pwelch(signal, sampleRate, &spectral.PwelchOptions{
		NFFT:     cfg.fftSize,
		Noverlap: cfg.overlap,
	})

	return freqs, pxx, nil
}
