package testutil

import "math"

// PeriodicSine returns n samples containing exactly cycles periods of a sine.
func PeriodicSine(n, cycles int, amplitude float64) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * float64(cycles) / float64(n)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// AddHarmonic adds amplitude*sin(2*pi*harmonic*i/len(dst)) to dst in place.
func AddHarmonic(dst []float64, harmonic int, amplitude float64) {
	step := 2 * math.Pi * float64(harmonic) / float64(len(dst))
	for i := range dst {
		dst[i] += amplitude * math.Sin(step*float64(i))
	}
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
