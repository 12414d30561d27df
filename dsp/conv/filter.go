package conv

// Boundary selects how samples beyond the signal edges are supplied when
// filtering with "same" output semantics.
type Boundary int

const (
	// BoundaryZeroPad treats samples outside the signal as zero. The first
	// and last floor(len(taps)/2) output samples carry edge transients.
	BoundaryZeroPad Boundary = iota

	// BoundaryReflect mirrors the signal about its end points, which
	// reduces edge transients for smooth signals.
	BoundaryReflect
)

// FilterOption configures a Filter call.
type FilterOption func(*filterConfig)

type filterConfig struct {
	boundary Boundary
}

// WithBoundary sets the boundary policy. The default is BoundaryZeroPad.
func WithBoundary(b Boundary) FilterOption {
	return func(c *filterConfig) {
		c.boundary = b
	}
}

// Filter convolves signal with taps and returns an output of exactly
// len(signal) samples ("same" semantics):
//
//	out[i] = sum_k taps[k] * signal[i-k+c],  c = (len(taps)-1)/2
//
// Samples outside the signal are supplied by the boundary policy. The
// underlying convolution is selected automatically (direct or FFT
// overlap-add), so tap counts larger than the signal are handled without
// special casing.
func Filter(signal, taps []float64, opts ...FilterOption) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(taps) == 0 {
		return nil, ErrEmptyKernel
	}

	cfg := filterConfig{boundary: BoundaryZeroPad}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.boundary == BoundaryZeroPad {
		return ConvolveMode(signal, taps, ModeSame)
	}

	return filterReflect(signal, taps)
}

// filterReflect pads the signal by mirroring about its end points, runs a
// full convolution, and keeps the fully-overlapping center portion.
func filterReflect(signal, taps []float64) ([]float64, error) {
	n := len(signal)
	m := len(taps)
	center := (m - 1) / 2

	// Left pad of m-1-center and right pad of center samples align the
	// valid region with the same centering as the zero-pad path.
	padLeft := m - 1 - center
	padded := make([]float64, n+m-1)
	for k := range padded {
		padded[k] = signal[reflectIndex(k-padLeft, n)]
	}

	full, err := Convolve(padded, taps)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	copy(out, full[m-1:m-1+n])
	return out, nil
}

// reflectIndex maps an out-of-range index into [0, n) by mirroring about the
// end points without repeating them, handling pads wider than the signal.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}
