package spectra

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-specsim/sim/aperiodic"
	"github.com/cwbudde/algo-specsim/sim/core"
	"github.com/cwbudde/algo-specsim/sim/params"
	"github.com/cwbudde/algo-specsim/sim/periodic"
)

// Generator synthesizes power spectra from a shared configuration.
type Generator struct {
	res float64
	src rand.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithResolution sets the frequency resolution in Hz.
func WithResolution(res float64) Option {
	return func(g *Generator) {
		if res > 0 {
			g.res = res
		}
	}
}

// WithSeed sets a deterministic seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.src = rand.NewSource(uint64(seed))
	}
}

// WithRandSource injects the random source used for noise generation.
func WithRandSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// NewGenerator creates a configured spectrum generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		res: DefaultResolution,
		src: rand.NewSource(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Resolution returns the generator frequency resolution.
func (g *Generator) Resolution() float64 {
	return g.res
}

// PowerValues synthesizes linear power values over xs from aperiodic
// parameters, a flat peak parameter list and a noise level. Components
// are summed in log10-power space; noise is drawn per bin from a
// zero-mean Gaussian with standard deviation nlv.
func (g *Generator) PowerValues(xs, apParams, peakParams []float64, nlv float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	if err := g.powerValuesInto(ys, xs, apParams, peakParams, nlv); err != nil {
		return nil, err
	}

	return ys, nil
}

// powerValuesInto writes the synthesized power values into dst, which
// must have the same length as xs.
func (g *Generator) powerValuesInto(dst, xs, apParams, peakParams []float64, nlv float64) error {
	if nlv < 0 {
		return fmt.Errorf("%w: %v", ErrNoiseLevel, nlv)
	}

	ap, err := aperiodic.Values(xs, apParams)
	if err != nil {
		return err
	}

	peaks, err := periodic.Values(xs, peakParams)
	if err != nil {
		return err
	}

	vecmath.AddBlockInPlace(ap, peaks)

	if nlv > 0 {
		noise := distuv.Normal{Mu: 0, Sigma: nlv, Src: g.src}
		for i := range ap {
			ap[i] += noise.Rand()
		}
	}

	for i, v := range ap {
		dst[i] = core.LogToPower(v)
	}

	return nil
}

// Spectrum synthesizes a single power spectrum over r at the generator
// resolution, returning the frequency axis and linear power values.
// Peak parameters are a flat (center, amplitude, bandwidth) triple
// list; use [periodic.Flatten] to normalize grouped input.
func (g *Generator) Spectrum(r Range, apParams, peakParams []float64, nlv float64) (xs, ys []float64, err error) {
	xs, err = Freqs(r, g.res)
	if err != nil {
		return nil, nil, err
	}

	ys, err = g.PowerValues(xs, apParams, peakParams, nlv)
	if err != nil {
		return nil, nil, err
	}

	return xs, ys, nil
}

// Group synthesizes a batch of n power spectra over r, pulling one
// aperiodic parameter set, one peak parameter set and one noise level
// from the given sources per spectrum, in index order with exactly one
// pull per source per iteration.
//
// It returns the shared frequency axis, an n-row power matrix and one
// [SimParams] record per row describing the parameters actually used.
// If any source runs out before n pulls, the error wraps both
// [ErrInsufficientParams] and the source failure, and no partial
// results are returned.
func (g *Generator) Group(n int, r Range, apSrc, peakSrc params.Source[[]float64], nlvSrc params.Source[float64]) ([]float64, [][]float64, []SimParams, error) {
	if n <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: %d", ErrSpectraCount, n)
	}
	if apSrc == nil || peakSrc == nil || nlvSrc == nil {
		return nil, nil, nil, ErrNilSource
	}

	xs, err := Freqs(r, g.res)
	if err != nil {
		return nil, nil, nil, err
	}

	backing := make([]float64, n*len(xs))
	ys := make([][]float64, n)
	used := make([]SimParams, n)

	for i := 0; i < n; i++ {
		ap, err := apSrc.Next()
		if err != nil {
			return nil, nil, nil, groupPullError("aperiodic", i, n, err)
		}

		peaks, err := peakSrc.Next()
		if err != nil {
			return nil, nil, nil, groupPullError("peak", i, n, err)
		}

		nlv, err := nlvSrc.Next()
		if err != nil {
			return nil, nil, nil, groupPullError("noise", i, n, err)
		}

		groups, err := periodic.GroupTriples(peaks)
		if err != nil {
			return nil, nil, nil, err
		}
		periodic.SortGroups(groups)

		used[i] = SimParams{
			Aperiodic:  append([]float64(nil), ap...),
			Peaks:      groups,
			NoiseLevel: nlv,
		}

		row := backing[i*len(xs) : (i+1)*len(xs)]
		if err := g.powerValuesInto(row, xs, ap, peaks, nlv); err != nil {
			return nil, nil, nil, err
		}
		ys[i] = row
	}

	return xs, ys, used, nil
}

func groupPullError(kind string, index, total int, cause error) error {
	return fmt.Errorf("%w: %s parameters at spectrum %d of %d: %w",
		ErrInsufficientParams, kind, index, total, cause)
}
