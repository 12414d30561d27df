package spectrum

import (
	"math"
	"math/cmplx"
	"testing"
)

// naiveDFT evaluates the DFT definition directly for the half spectrum.
func naiveDFT(signal []float64) []complex128 {
	n := len(signal)
	bins := n/2 + 1
	out := make([]complex128, bins)
	for k := range out {
		var sum complex128
		for i, v := range signal {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func TestForwardLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 12, 100, 1000, 1024} {
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = math.Sin(2 * math.Pi * float64(i) / 10)
		}
		spec, err := Forward(signal)
		if err != nil {
			t.Fatalf("Forward(n=%d) error = %v", n, err)
		}
		if want := n/2 + 1; len(spec) != want {
			t.Fatalf("n=%d: len = %d, want %d", n, len(spec), want)
		}
	}
}

func TestForwardEmptySignal(t *testing.T) {
	if _, err := Forward(nil); err != ErrEmptySignal {
		t.Fatalf("err = %v, want ErrEmptySignal", err)
	}
}

func TestForwardSingleSample(t *testing.T) {
	spec, err := Forward([]float64{2.5})
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if len(spec) != 1 || spec[0] != complex(2.5, 0) {
		t.Fatalf("spec = %v, want [(2.5+0i)]", spec)
	}
}

func TestForwardMatchesDefinition(t *testing.T) {
	// Both power-of-two and general lengths, even and odd.
	for _, n := range []int{4, 7, 12, 15, 16, 33, 64} {
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = math.Sin(2*math.Pi*float64(i)/5) + 0.5*float64(i%3)
		}

		got, err := Forward(signal)
		if err != nil {
			t.Fatalf("Forward(n=%d) error = %v", n, err)
		}
		want := naiveDFT(signal)
		for k := range want {
			if cmplx.Abs(got[k]-want[k]) > 1e-9*float64(n) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestForwardDCBin(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5}
	spec, err := Forward(signal)
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if math.Abs(real(spec[0])-15) > 1e-9 || math.Abs(imag(spec[0])) > 1e-9 {
		t.Fatalf("DC bin = %v, want 15", spec[0])
	}
}

func TestForwardDetectsTone(t *testing.T) {
	const n = 1000
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 10 * float64(i) / n)
	}

	spec, err := Forward(signal)
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	mag := Magnitude(spec)
	maxBin := 0
	for i, v := range mag {
		if v > mag[maxBin] {
			maxBin = i
		}
	}
	if maxBin != 10 {
		t.Fatalf("peak bin = %d, want 10", maxBin)
	}
	// A full-scale tone over an integer bin count concentrates N/2 there.
	if math.Abs(mag[10]-n/2) > 1e-6*n {
		t.Fatalf("peak magnitude = %v, want %v", mag[10], n/2)
	}
}

func TestForwardDoesNotMutateInput(t *testing.T) {
	signal := []float64{1, -2, 3, -4, 5, -6}
	orig := append([]float64(nil), signal...)

	if _, err := Forward(signal); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	for i := range orig {
		if signal[i] != orig[i] {
			t.Fatalf("input mutated at %d: %v != %v", i, signal[i], orig[i])
		}
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(10, 1000, 1000); got != 10 {
		t.Fatalf("BinFrequency = %v, want 10", got)
	}
	if got := BinFrequency(5, 48000, 0); got != 0 {
		t.Fatalf("BinFrequency with zero length = %v, want 0", got)
	}
}
