// Package firdesign computes FIR filter coefficients.
//
// It currently provides windowed-sinc low-pass design: an ideal sinc impulse
// response truncated to a finite tap count, shaped by a window function, and
// normalized to unit DC gain. The resulting taps are symmetric (linear
// phase) and are applied by dsp/conv or dsp/filter/fir.
package firdesign

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/jpak0/Tactical-Radio-Signal-Processor/dsp/window"
)

// Option configures a filter design.
type Option func(*config)

type config struct {
	windowType window.Type
}

func defaultConfig() config {
	return config{windowType: window.TypeHamming}
}

// WithWindow selects the window applied to the truncated sinc response.
// The default is Hamming.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}

// Lowpass designs low-pass FIR coefficients using the windowed-sinc method.
//
// cutoff is the normalized cutoff frequency as a fraction of the sample rate,
// in (0, 0.5] where 0.5 is Nyquist. numTaps is the coefficient count; odd
// counts center the response on a tap, even counts between taps. The taps
// are normalized so their sum is 1 (unit DC gain) and satisfy
// h[i] == h[numTaps-1-i].
func Lowpass(cutoff float64, numTaps int, opts ...Option) ([]float64, error) {
	if cutoff <= 0 || cutoff > 0.5 {
		return nil, fmt.Errorf("lowpass cutoff must be in (0, 0.5]: %f", cutoff)
	}
	if numTaps < 1 {
		return nil, fmt.Errorf("lowpass tap count must be >= 1: %d", numTaps)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	center := float64(numTaps-1) / 2
	taps := make([]float64, numTaps)
	for i := range taps {
		taps[i] = sinc(2 * cutoff * (float64(i) - center))
	}

	win := window.Generate(cfg.windowType, numTaps)
	for i := range taps {
		taps[i] *= win[i]
	}

	sum := floats.Sum(taps)
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("lowpass design degenerate: tap sum %f", sum)
	}
	floats.Scale(1/sum, taps)

	return taps, nil
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x) with sinc(0) = 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
