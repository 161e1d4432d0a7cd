// Package aperiodic evaluates the aperiodic (background) component of a
// power spectrum in log10-power space.
//
// Two functional forms are supported, distinguished by their parameter
// count:
//
//   - fixed: (offset, exponent), two parameters
//   - knee:  (offset, knee, exponent), three parameters
//
// The form can be selected explicitly via a [Mode], or inferred from the
// parameter count with [InferMode].
package aperiodic

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by aperiodic functions.
var (
	ErrParamCount  = errors.New("aperiodic: parameter count must be 2 (fixed) or 3 (knee)")
	ErrUnknownMode = errors.New("aperiodic: unknown mode")
)

// Mode identifies the aperiodic functional form.
type Mode int

const (
	// ModeFixed is the two-parameter form: offset - log10(x^exponent).
	ModeFixed Mode = iota
	// ModeKnee is the three-parameter form: offset - log10(knee + x^exponent).
	ModeKnee
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeKnee:
		return "knee"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParamCount returns the number of parameters the mode expects.
func (m Mode) ParamCount() int {
	switch m {
	case ModeFixed:
		return 2
	case ModeKnee:
		return 3
	default:
		return 0
	}
}

// ParseMode resolves a mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "fixed":
		return ModeFixed, nil
	case "knee":
		return ModeKnee, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// InferMode infers the aperiodic mode from the parameter count:
// 2 parameters select fixed, 3 select knee.
func InferMode(params []float64) (Mode, error) {
	switch len(params) {
	case 2:
		return ModeFixed, nil
	case 3:
		return ModeKnee, nil
	default:
		return 0, fmt.Errorf("%w: got %d", ErrParamCount, len(params))
	}
}

// CurveFunc evaluates an aperiodic curve over a frequency vector.
// The parameter order matches the owning mode.
type CurveFunc func(xs []float64, params ...float64) []float64

// Func returns the curve function for the given mode.
func Func(mode Mode) (CurveFunc, error) {
	switch mode {
	case ModeFixed:
		return fixedValues, nil
	case ModeKnee:
		return kneeValues, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

// Values evaluates the aperiodic component over xs, inferring the mode
// from the parameter count. The result is in log10-power units and has
// the same length as xs.
func Values(xs, params []float64) ([]float64, error) {
	mode, err := InferMode(params)
	if err != nil {
		return nil, err
	}

	return ValuesMode(xs, params, mode)
}

// ValuesMode evaluates the aperiodic component using an explicit mode.
// The parameter count must match the mode.
func ValuesMode(xs, params []float64, mode Mode) ([]float64, error) {
	fn, err := Func(mode)
	if err != nil {
		return nil, err
	}

	if len(params) != mode.ParamCount() {
		return nil, fmt.Errorf("%w: mode %v expects %d, got %d",
			ErrParamCount, mode, mode.ParamCount(), len(params))
	}

	return fn(xs, params...), nil
}

// fixedValues evaluates offset - log10(x^exponent).
func fixedValues(xs []float64, params ...float64) []float64 {
	offset, exponent := params[0], params[1]

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = offset - math.Log10(math.Pow(x, exponent))
	}

	return out
}

// kneeValues evaluates offset - log10(knee + x^exponent).
func kneeValues(xs []float64, params ...float64) []float64 {
	offset, knee, exponent := params[0], params[1], params[2]

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = offset - math.Log10(knee+math.Pow(x, exponent))
	}

	return out
}
