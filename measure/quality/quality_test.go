package quality

import (
	"errors"
	"math"
	"testing"

	"github.com/jpak0/Tactical-Radio-Signal-Processor/dsp/spectrum"
)

func TestSNRKnownValue(t *testing.T) {
	reference := []float64{1, 1, 1, 1}
	test := []float64{1, 1, 1, 2}

	// signal power 4, noise power 1
	got, err := SNR(reference, test)
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	want := 10 * math.Log10(4)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("SNR = %v, want %v", got, want)
	}
}

func TestSNRIdenticalSignalsIsInf(t *testing.T) {
	s := []float64{0.5, -0.25, 0.125}
	got, err := SNR(s, s)
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Fatalf("SNR = %v, want +Inf", got)
	}
}

func TestSNRLengthMismatch(t *testing.T) {
	_, err := SNR([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestSNREmptySignals(t *testing.T) {
	if _, err := SNR(nil, []float64{1}); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("err = %v, want ErrEmptySignal", err)
	}
	if _, err := SNR([]float64{1}, nil); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("err = %v, want ErrEmptySignal", err)
	}
}

func TestSNRDecreasesWithNoise(t *testing.T) {
	reference := make([]float64, 256)
	lowNoise := make([]float64, 256)
	highNoise := make([]float64, 256)
	for i := range reference {
		reference[i] = math.Sin(2 * math.Pi * float64(i) / 32)
		lowNoise[i] = reference[i] + 0.01*math.Cos(float64(i))
		highNoise[i] = reference[i] + 0.3*math.Cos(float64(i))
	}

	low, err := SNR(reference, lowNoise)
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	high, err := SNR(reference, highNoise)
	if err != nil {
		t.Fatalf("SNR() error = %v", err)
	}
	if low <= high {
		t.Fatalf("expected SNR to decrease with noise: low %v, high %v", low, high)
	}
}

func tone(freqHz, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freqHz * float64(i) / sampleRate)
	}
	return out
}

func TestPeakFrequencyDetectsTone(t *testing.T) {
	spec, err := spectrum.Forward(tone(10, 1000, 1000))
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	freq, err := PeakFrequency(spec, 1000)
	if err != nil {
		t.Fatalf("PeakFrequency() error = %v", err)
	}
	if math.Abs(freq-10) > 0.5 {
		t.Fatalf("peak = %v Hz, want 10 +/- 0.5", freq)
	}
}

func TestPeakFrequencyExcludesDC(t *testing.T) {
	// Strong DC offset over a weak tone: the DC bin dominates the raw
	// spectrum, but the search must start at bin 1.
	signal := tone(25, 1000, 1000)
	for i := range signal {
		signal[i] = 0.1*signal[i] + 10
	}

	spec, err := spectrum.Forward(signal)
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	freq, err := PeakFrequency(spec, 1000)
	if err != nil {
		t.Fatalf("PeakFrequency() error = %v", err)
	}
	if math.Abs(freq-25) > 0.5 {
		t.Fatalf("peak = %v Hz, want 25 +/- 0.5", freq)
	}
}

func TestPeakFrequencyNOddLength(t *testing.T) {
	const n = 999
	spec, err := spectrum.Forward(tone(10, 1000, n))
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	freq, err := PeakFrequencyN(spec, 1000, n)
	if err != nil {
		t.Fatalf("PeakFrequencyN() error = %v", err)
	}
	if math.Abs(freq-10) > 0.6 {
		t.Fatalf("peak = %v Hz, want near 10", freq)
	}
}

func TestPeakFrequencyInvalidInputs(t *testing.T) {
	spec, err := spectrum.Forward(tone(10, 1000, 100))
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	if _, err := PeakFrequency([]complex128{complex(1, 0)}, 1000); err == nil {
		t.Fatal("expected error for single-bin spectrum")
	}
	if _, err := PeakFrequency(spec, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := PeakFrequencyN(spec, 1000, 50); err == nil {
		t.Fatal("expected error for inconsistent original length")
	}
}

func TestAnalyze(t *testing.T) {
	reference := tone(10, 1000, 1000)
	test := make([]float64, len(reference))
	for i := range test {
		test[i] = reference[i] + 0.01*math.Cos(float64(i))
	}

	res, err := Analyze(reference, test, 1000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.PeakBin != 10 {
		t.Fatalf("PeakBin = %d, want 10", res.PeakBin)
	}
	if math.Abs(res.PeakFreq-10) > 0.5 {
		t.Fatalf("PeakFreq = %v, want 10", res.PeakFreq)
	}
	if res.SNR < 30 {
		t.Fatalf("SNR = %v, want > 30 dB for tiny perturbation", res.SNR)
	}
	if res.PeakMagnitude <= 0 {
		t.Fatalf("PeakMagnitude = %v, want > 0", res.PeakMagnitude)
	}
}

func TestAnalyzeSelfReference(t *testing.T) {
	s := tone(50, 1000, 500)
	res, err := Analyze(s, s, 1000)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if !math.IsInf(res.SNR, 1) {
		t.Fatalf("SNR = %v, want +Inf", res.SNR)
	}
}
