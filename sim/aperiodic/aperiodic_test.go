package aperiodic

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-specsim/sim/core"
)

func TestInferMode(t *testing.T) {
	mode, err := InferMode([]float64{0, 2})
	if err != nil {
		t.Fatalf("InferMode() error = %v", err)
	}
	if mode != ModeFixed {
		t.Fatalf("mode = %v, want fixed", mode)
	}

	mode, err = InferMode([]float64{0, 10, 2})
	if err != nil {
		t.Fatalf("InferMode() error = %v", err)
	}
	if mode != ModeKnee {
		t.Fatalf("mode = %v, want knee", mode)
	}
}

func TestInferModeBadCount(t *testing.T) {
	for _, params := range [][]float64{nil, {1}, {1, 2, 3, 4}} {
		if _, err := InferMode(params); !errors.Is(err, ErrParamCount) {
			t.Fatalf("InferMode(%v) error = %v, want ErrParamCount", params, err)
		}
	}
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{"fixed": ModeFixed, "knee": ModeKnee} {
		mode, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q) error = %v", name, err)
		}
		if mode != want {
			t.Fatalf("ParseMode(%q) = %v, want %v", name, mode, want)
		}
	}

	if _, err := ParseMode("lorentzian"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("ParseMode(unknown) error = %v, want ErrUnknownMode", err)
	}
}

func TestValuesFixed(t *testing.T) {
	xs := []float64{1, 10, 100}

	ys, err := Values(xs, []float64{0, 2})
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if len(ys) != len(xs) {
		t.Fatalf("len = %d, want %d", len(ys), len(xs))
	}

	// offset - log10(x^2): 0, -2, -4.
	want := []float64{0, -2, -4}
	for i := range want {
		if !core.NearlyEqual(ys[i], want[i], 1e-12) {
			t.Fatalf("ys[%d]=%v, want %v", i, ys[i], want[i])
		}
	}
}

func TestValuesKnee(t *testing.T) {
	xs := []float64{1, 10}

	ys, err := Values(xs, []float64{1, 99, 2})
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}

	// offset - log10(knee + x^2): 1 - log10(100) = -1 at x=1,
	// 1 - log10(199) at x=10.
	if !core.NearlyEqual(ys[0], -1, 1e-12) {
		t.Fatalf("ys[0]=%v, want -1", ys[0])
	}
	if !core.NearlyEqual(ys[1], 1-math.Log10(199), 1e-12) {
		t.Fatalf("ys[1]=%v, want %v", ys[1], 1-math.Log10(199))
	}
}

func TestValuesModeCountMismatch(t *testing.T) {
	xs := []float64{1, 2}
	if _, err := ValuesMode(xs, []float64{0, 2}, ModeKnee); !errors.Is(err, ErrParamCount) {
		t.Fatalf("ValuesMode() error = %v, want ErrParamCount", err)
	}
}

func TestFuncDispatch(t *testing.T) {
	xs := []float64{2, 4}
	params := []float64{1, 1}

	fn, err := Func(ModeFixed)
	if err != nil {
		t.Fatalf("Func() error = %v", err)
	}

	direct := fn(xs, params...)
	viaValues, err := ValuesMode(xs, params, ModeFixed)
	if err != nil {
		t.Fatalf("ValuesMode() error = %v", err)
	}
	for i := range direct {
		if direct[i] != viaValues[i] {
			t.Fatalf("dispatch mismatch at %d: %v != %v", i, direct[i], viaValues[i])
		}
	}

	if _, err := Func(Mode(17)); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("Func(17) error = %v, want ErrUnknownMode", err)
	}
}
