package window

import (
	"math"
	"testing"
)

func TestGenerateLengthAndFiniteness(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeKaiser,
	}

	for _, typ := range types {
		t.Run(Name(typ), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGenerateSymmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		w := Generate(typ, 65)
		for i := range w {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Fatalf("%s: w[%d]=%v != w[%d]=%v", Name(typ), i, w[i], j, w[j])
			}
		}
	}
}

func TestHammingEndpointsAndPeak(t *testing.T) {
	w := Generate(TypeHamming, 51)
	if math.Abs(w[0]-0.08) > 1e-12 {
		t.Fatalf("w[0]=%v, want 0.08", w[0])
	}
	if math.Abs(w[50]-0.08) > 1e-12 {
		t.Fatalf("w[50]=%v, want 0.08", w[50])
	}
	if math.Abs(w[25]-1.0) > 1e-12 {
		t.Fatalf("center=%v, want 1.0", w[25])
	}
}

func TestGenerateSinglePoint(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeKaiser} {
		w := Generate(typ, 1)
		if len(w) != 1 || w[0] != 1 {
			t.Fatalf("%s: single-point window = %v, want [1]", Name(typ), w)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHamming, 0); w != nil {
		t.Fatalf("Generate(_, 0) = %v, want nil", w)
	}
	if _, err := Hamming(0); err == nil {
		t.Fatal("Hamming(0) should report an error")
	}
}

func TestKaiserBetaZeroIsRectangular(t *testing.T) {
	w, err := Kaiser(16, 0)
	if err != nil {
		t.Fatalf("Kaiser() error = %v", err)
	}
	for i, v := range w {
		if v != 1 {
			t.Fatalf("w[%d]=%v, want 1", i, v)
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 0.5, 0.5}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients() error = %v", err)
	}
	want := []float64{0.5, 1, 1.5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestApplyInPlace(t *testing.T) {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf)
	if buf[0] != 0 || buf[3] != 0 {
		t.Fatalf("hann endpoints should be 0, got %v", buf)
	}
}
