// Package spectra synthesizes artificial frequency-domain power spectra
// from parametric descriptions of an aperiodic trend, zero or more
// Gaussian peaks, and optional per-bin noise.
//
// A spectrum is built in log10-power space as
//
//	log10(y) = aperiodic(x) + peaks(x) + noise
//
// and exponentiated to linear power. Single spectra come from
// [Generator.Spectrum]; batches with per-spectrum parameter records come
// from [Generator.Group], fed by the producers in sim/params.
//
// # Usage
//
// Simulate one noiseless spectrum with a single alpha peak:
//
//	g := spectra.NewGenerator(spectra.WithResolution(0.5))
//	xs, ys, err := g.Spectrum(spectra.Range{Low: 1, High: 50}, []float64{0, 2}, []float64{10, 1, 1}, 0)
//
// Simulate a batch, sampling aperiodic parameters per spectrum:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	apSrc, _ := params.Sampler(rng, [][]float64{{0, 1}, {0, 1.5}, {0, 2}}, nil)
//	xs, ys, used, err := g.Group(10, spectra.Range{Low: 1, High: 50},
//		apSrc, params.Fixed([]float64{10, 1, 1}), params.Fixed(spectra.DefaultNoiseLevel))
//
// Generated randomness is owned by the Generator; seed it with
// [WithSeed] or inject a source with [WithRandSource] for reproducible
// noise.
package spectra
