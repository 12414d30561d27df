package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jpak0/Tactical-Radio-Signal-Processor/dsp/core"
)

// Rander is a unit noise distribution. It is satisfied by the gonum
// distuv distributions (e.g. [distuv.Normal], [distuv.Uniform]).
type Rander interface {
	Rand() float64
}

// Generator creates deterministic test signals from a shared configuration.
//
// Noise is drawn from a zero-mean unit distribution and scaled by the
// requested amplitude. The default distribution is Gaussian with unit
// standard deviation, seeded for reproducibility; use [WithNoise] to plug in
// a different distribution.
type Generator struct {
	cfg   core.ProcessorConfig
	seed  int64
	noise Rander
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for the default noise source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithNoise replaces the default Gaussian noise source. The distribution
// should have zero mean and unit scale; samples are multiplied by the
// noise amplitude passed to [Generator.TestSignal].
func WithNoise(r Rander) Option {
	return func(g *Generator) {
		g.noise = r
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a signal generator with generator-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed sets the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// UniformNoise returns a zero-mean uniform noise distribution on [-1, 1].
func UniformNoise() Rander {
	return distuv.Uniform{Min: -1, Max: 1}
}

// GaussianNoise returns a zero-mean unit-variance Gaussian noise distribution.
func GaussianNoise() Rander {
	return distuv.Normal{Mu: 0, Sigma: 1}
}

// Sine generates a sine wave of the given frequency and amplitude.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Multisine generates a sum of sine waves, one per frequency, each with the
// given amplitude scaled by the matching weight. weights may be nil for
// unit weights.
func (g *Generator) Multisine(freqsHz, weights []float64, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("multisine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("multisine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multisine requires at least one frequency")
	}
	if weights != nil && len(weights) != len(freqsHz) {
		return nil, fmt.Errorf("multisine weights length %d != frequencies length %d", len(weights), len(freqsHz))
	}

	out := make([]float64, samples)
	for fi, f := range freqsHz {
		w := 1.0
		if weights != nil {
			w = weights[fi]
		}
		step := 2 * math.Pi * f / g.cfg.SampleRate
		for i := range out {
			out[i] += amplitude * w * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// TestSignal generates a sine tone with additive noise, the standard test
// input for the filtering pipeline.
//
// The output has round(sampleRate*durationSec) samples. Sample i is
// sin(2*pi*freqHz*i/sampleRate) plus an independent draw from the noise
// distribution scaled by noiseAmplitude. A noiseAmplitude of 0 produces the
// exact clean tone with no generator draws, so repeated calls are identical.
func (g *Generator) TestSignal(freqHz, durationSec, noiseAmplitude float64) ([]float64, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("test signal frequency must be > 0: %f", freqHz)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("test signal sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if durationSec <= 0 {
		return nil, fmt.Errorf("test signal duration must be > 0: %f", durationSec)
	}
	if noiseAmplitude < 0 {
		return nil, fmt.Errorf("test signal noise amplitude must be >= 0: %f", noiseAmplitude)
	}

	samples := int(math.Round(g.cfg.SampleRate * durationSec))
	if samples <= 0 {
		return nil, fmt.Errorf("test signal would be empty: rate %f, duration %f", g.cfg.SampleRate, durationSec)
	}

	out, err := g.Sine(freqHz, 1, samples)
	if err != nil {
		return nil, err
	}

	if noiseAmplitude == 0 {
		return out, nil
	}

	noise := g.noise
	if noise == nil {
		noise = seededGaussian{rand.New(rand.NewSource(g.seed))}
	}
	for i := range out {
		out[i] += noiseAmplitude * noise.Rand()
	}
	return out, nil
}

// WhiteNoise generates deterministic uniform white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Impulse generates a unit-scaled impulse at the given sample offset.
func (g *Generator) Impulse(amplitude float64, samples, offset int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if offset < 0 || offset >= samples {
		return nil, fmt.Errorf("impulse offset out of range: %d (samples %d)", offset, samples)
	}
	out := make([]float64, samples)
	out[offset] = amplitude
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

// seededGaussian adapts a seeded math/rand generator to the Rander interface.
type seededGaussian struct {
	rng *rand.Rand
}

func (s seededGaussian) Rand() float64 {
	return s.rng.NormFloat64()
}
