package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "inside", value: 0.5, lo: -1, hi: 1, expected: 0.5},
		{name: "below", value: -40000, lo: -32768, hi: 32767, expected: -32768},
		{name: "above", value: 40000, lo: -32768, hi: 32767, expected: 32767},
		{name: "swapped", value: 2, lo: 1, hi: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.lo, tt.hi)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon to accept tiny difference")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(0.5); !NearlyEqual(got, -6.020599913279624, 1e-12) {
		t.Fatalf("LinearToDB(0.5) = %v", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}

	if got := LinearPowerToDB(100); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
