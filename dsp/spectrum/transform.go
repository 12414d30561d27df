// Package spectrum computes frequency-domain representations of real-valued
// signals and derived views of complex spectra.
//
// Forward returns the non-redundant half spectrum of a real input: bins 0
// (DC) through floor(N/2) (Nyquist for even N). Power-of-two lengths are
// transformed with an algo-fft plan; every other length goes through the
// go-dsp real FFT, which handles arbitrary sizes without zero-padding.
package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// ErrEmptySignal is returned when a transform is requested for no samples.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// Forward computes the DFT of a real-valued signal and returns bins
// 0..floor(N/2), a slice of length floor(N/2)+1. The input is not modified.
//
//	X[k] = sum_{n=0}^{N-1} x[n] * e^{-2*pi*i*k*n/N}
//
// Any signal length N >= 1 is supported; the length is never padded, so bin
// k corresponds to frequency k*sampleRate/N.
func Forward(signal []float64) ([]complex128, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	bins := n/2 + 1

	if n == 1 {
		return []complex128{complex(signal[0], 0)}, nil
	}

	if isPowerOf2(n) {
		return forwardPow2(signal, bins)
	}

	full := fft.FFTReal(signal)
	out := make([]complex128, bins)
	copy(out, full[:bins])
	return out, nil
}

// forwardPow2 transforms power-of-two lengths through an algo-fft plan.
func forwardPow2(signal []float64, bins int) ([]complex128, error) {
	n := len(signal)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	full := make([]complex128, n)
	if err := plan.Forward(full, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	out := make([]complex128, bins)
	copy(out, full[:bins])
	return out, nil
}

// BinFrequency returns the center frequency in Hz of bin k for a transform
// of originalLength samples at the given sample rate.
func BinFrequency(k int, sampleRate float64, originalLength int) float64 {
	if originalLength <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(originalLength)
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
