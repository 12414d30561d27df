// Package quality measures signal fidelity for the filtering pipeline: SNR
// between a reference and a processed signal, and the dominant frequency of
// a computed spectrum.
package quality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/jpak0/Tactical-Radio-Signal-Processor/dsp/core"
	"github.com/jpak0/Tactical-Radio-Signal-Processor/dsp/spectrum"
)

// Errors returned by quality measurements.
var (
	ErrLengthMismatch = errors.New("quality: signal length mismatch")
	ErrEmptySignal    = errors.New("quality: empty signal")
)

// SNR computes the signal-to-noise ratio in dB between a reference signal
// and a test signal of equal length:
//
//	SNR = 10*log10(sum(ref[i]^2) / sum((test[i]-ref[i])^2))
//
// A test signal identical to the reference has zero noise power; the result
// is then +Inf rather than an error. The inputs are never truncated: unequal
// lengths return ErrLengthMismatch.
func SNR(reference, test []float64) (float64, error) {
	if len(reference) == 0 || len(test) == 0 {
		return 0, ErrEmptySignal
	}
	if len(reference) != len(test) {
		return 0, fmt.Errorf("%w: reference %d, test %d", ErrLengthMismatch, len(reference), len(test))
	}

	signalPower := floats.Dot(reference, reference)

	dist := floats.Distance(reference, test, 2)
	noisePower := dist * dist

	if noisePower == 0 {
		return math.Inf(1), nil
	}

	return core.LinearPowerToDB(signalPower / noisePower), nil
}

// PeakFrequency returns the dominant frequency in Hz of a half spectrum as
// produced by [spectrum.Forward].
//
// Bin 0 (DC) is excluded from the search so that a DC offset cannot mask the
// tone of interest. The original signal length is taken as
// 2*(len(spec)-1), which is exact for even-length inputs; for odd original
// lengths use [PeakFrequencyN].
func PeakFrequency(spec []complex128, sampleRate float64) (float64, error) {
	return PeakFrequencyN(spec, sampleRate, 2*(len(spec)-1))
}

// PeakFrequencyN is PeakFrequency with the original signal length given
// explicitly, resolving the half-spectrum length ambiguity for odd N.
func PeakFrequencyN(spec []complex128, sampleRate float64, originalLength int) (float64, error) {
	if len(spec) < 2 {
		return 0, fmt.Errorf("%w: peak search needs at least 2 spectrum bins, got %d", ErrEmptySignal, len(spec))
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("quality: sample rate must be > 0: %f", sampleRate)
	}
	if want := originalLength/2 + 1; originalLength < 2 || want != len(spec) {
		return 0, fmt.Errorf("quality: original length %d inconsistent with %d spectrum bins", originalLength, len(spec))
	}

	bin, _ := peakBin(spec)
	return spectrum.BinFrequency(bin, sampleRate, originalLength), nil
}

// peakBin returns the strongest non-DC bin and its magnitude.
func peakBin(spec []complex128) (int, float64) {
	mag := spectrum.Magnitude(spec)

	maxBin := 1
	for k := 2; k < len(mag); k++ {
		if mag[k] > mag[maxBin] {
			maxBin = k
		}
	}
	return maxBin, mag[maxBin]
}

// Result holds a combined quality measurement of a processed signal.
type Result struct {
	SNR           float64 // dB relative to the reference
	PeakFreq      float64 // Hz
	PeakBin       int
	PeakMagnitude float64
}

// Analyze computes SNR of test against reference together with the dominant
// frequency of the test signal, in one call. Both signals must have the
// same length; sampleRate is the rate they were sampled at.
func Analyze(reference, test []float64, sampleRate float64) (Result, error) {
	snr, err := SNR(reference, test)
	if err != nil {
		return Result{}, err
	}

	spec, err := spectrum.Forward(test)
	if err != nil {
		return Result{}, fmt.Errorf("quality: %w", err)
	}
	if len(spec) < 2 {
		return Result{}, fmt.Errorf("%w: signal too short for peak search", ErrEmptySignal)
	}
	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("quality: sample rate must be > 0: %f", sampleRate)
	}

	bin, mag := peakBin(spec)

	return Result{
		SNR:           snr,
		PeakFreq:      spectrum.BinFrequency(bin, sampleRate, len(test)),
		PeakBin:       bin,
		PeakMagnitude: mag,
	}, nil
}
