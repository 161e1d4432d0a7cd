// Package params provides bounded producers of per-spectrum parameter
// values for batch spectrum generation.
//
// A [Source] yields one value per pull. The constructors cover the three
// input shapes batch generation accepts: a constant applied to every
// spectrum ([Fixed]), a finite positional list ([List]), and an
// open-ended stream ([SourceFunc], [Sampler], [Stepper], [Iter]).
// Sources that run out return an error wrapping [ErrExhausted].
//
// Stochastic sources take an explicit seeded RNG; nothing in this
// package touches global random state.
package params

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Errors returned by source constructors and pulls.
var (
	ErrExhausted  = errors.New("params: source exhausted")
	ErrNilRand    = errors.New("params: rng must not be nil")
	ErrNoChoices  = errors.New("params: sampler needs at least one choice")
	ErrBadWeights = errors.New("params: weights must match choices and sum to a positive value")
	ErrBadStep    = errors.New("params: step must move start towards stop")
	ErrBadIndex   = errors.New("params: index out of range for parameter set")
)

// Source yields successive parameter values for a batch run.
type Source[T any] interface {
	Next() (T, error)
}

// SourceFunc adapts a plain function to a [Source]. It is the bridge for
// arbitrary caller-defined parameter streams.
type SourceFunc[T any] func() (T, error)

// Next calls the wrapped function.
func (f SourceFunc[T]) Next() (T, error) {
	return f()
}

type fixed[T any] struct {
	value T
}

func (f fixed[T]) Next() (T, error) {
	return f.value, nil
}

// Fixed returns a source that yields the same value on every pull and
// never exhausts.
func Fixed[T any](value T) Source[T] {
	return fixed[T]{value: value}
}

type list[T any] struct {
	items []T
	next  int
}

func (l *list[T]) Next() (T, error) {
	if l.next >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("%w after %d items", ErrExhausted, len(l.items))
	}

	item := l.items[l.next]
	l.next++

	return item, nil
}

// List returns a source that yields the given items positionally and
// exhausts after the last one.
func List[T any](items []T) Source[T] {
	return &list[T]{items: items}
}

type sampler[T any] struct {
	rng     *rand.Rand
	choices []T
	cumsum  []float64
	total   float64
}

func (s *sampler[T]) Next() (T, error) {
	u := s.rng.Float64() * s.total
	for i, c := range s.cumsum {
		if u < c {
			return s.choices[i], nil
		}
	}

	return s.choices[len(s.choices)-1], nil
}

// Sampler returns a source that draws uniformly (or by the given
// weights) from choices on every pull. It never exhausts.
func Sampler[T any](rng *rand.Rand, choices []T, weights []float64) (Source[T], error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	if weights != nil && len(weights) != len(choices) {
		return nil, fmt.Errorf("%w: %d weights for %d choices", ErrBadWeights, len(weights), len(choices))
	}

	cumsum := make([]float64, len(choices))
	total := 0.0
	for i := range choices {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v", ErrBadWeights, w)
		}
		total += w
		cumsum[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrBadWeights, total)
	}

	return &sampler[T]{rng: rng, choices: choices, cumsum: cumsum, total: total}, nil
}

type stepper struct {
	start, step  float64
	index, count int
}

func (s *stepper) Next() (float64, error) {
	if s.index >= s.count {
		return 0, fmt.Errorf("%w after %d steps", ErrExhausted, s.count)
	}

	v := s.start + float64(s.index)*s.step
	s.index++

	return v, nil
}

// Stepper returns a finite source sweeping a scalar from start towards
// stop (exclusive) in increments of step. The step sign must match the
// sweep direction.
func Stepper(start, stop, step float64) (Source[float64], error) {
	if step == 0 || (stop-start)*step <= 0 {
		return nil, fmt.Errorf("%w: start=%v stop=%v step=%v", ErrBadStep, start, stop, step)
	}

	// stop is exclusive; the guard keeps near-exact spans from picking
	// up a spurious extra step under floating-point division.
	ratio := math.Abs(stop-start) / math.Abs(step)
	count := int(math.Ceil(ratio - 1e-9))

	return &stepper{start: start, step: step, count: count}, nil
}

type iter struct {
	base  []float64
	index int
	steps Source[float64]
}

func (it *iter) Next() ([]float64, error) {
	v, err := it.steps.Next()
	if err != nil {
		return nil, err
	}

	out := append([]float64(nil), it.base...)
	out[it.index] = v

	return out, nil
}

// Iter returns a source yielding copies of base with the value at index
// replaced by successive pulls from steps. It exhausts when steps does.
func Iter(base []float64, index int, steps Source[float64]) (Source[[]float64], error) {
	if index < 0 || index >= len(base) {
		return nil, fmt.Errorf("%w: index %d, set length %d", ErrBadIndex, index, len(base))
	}

	return &iter{base: append([]float64(nil), base...), index: index, steps: steps}, nil
}
