package psd

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / sampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}

	return out
}

func TestEstimateShape(t *testing.T) {
	sampleRate := 1024.0
	signal := sine(64, sampleRate, 4096)

	freqs, pxx, err := Estimate(signal, sampleRate, WithFFTSize(512))
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if len(freqs) != len(pxx) {
		t.Fatalf("axis/power length mismatch: %d vs %d", len(freqs), len(pxx))
	}
	if len(freqs) == 0 {
		t.Fatal("empty estimate")
	}
	if freqs[0] != 0 {
		t.Fatalf("first bin = %v, want 0 (DC)", freqs[0])
	}
	if last := freqs[len(freqs)-1]; math.Abs(last-sampleRate/2) > 1e-9 {
		t.Fatalf("last bin = %v, want Nyquist %v", last, sampleRate/2)
	}
}

func TestEstimatePeakLocation(t *testing.T) {
	sampleRate := 1024.0
	toneFreq := 64.0
	signal := sine(toneFreq, sampleRate, 8192)

	freqs, pxx, err := Estimate(signal, sampleRate, WithFFTSize(1024))
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}

	maxBin := 0
	for i, p := range pxx {
		if p > pxx[maxBin] {
			maxBin = i
		}
	}
	if math.Abs(freqs[maxBin]-toneFreq) > sampleRate/1024 {
		t.Fatalf("peak at %v Hz, want near %v Hz", freqs[maxBin], toneFreq)
	}
}

func TestEstimateValidation(t *testing.T) {
	if _, _, err := Estimate(nil, 1024); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("empty signal error = %v", err)
	}
	if _, _, err := Estimate([]float64{1}, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("bad sample rate error = %v", err)
	}
	if _, _, err := Estimate([]float64{1}, 1024, WithFFTSize(-1)); !errors.Is(err, ErrInvalidFFTSize) {
		t.Fatalf("bad fft size error = %v", err)
	}
	if _, _, err := Estimate([]float64{1}, 1024, WithOverlap(-1)); !errors.Is(err, ErrInvalidOverlap) {
		t.Fatalf("bad overlap error = %v", err)
	}
}
