package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(value, lo), hi)
}

// NearlyEqual reports whether a and b are equal within eps, absolute for
// values near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff/largest <= eps
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	}
	return 20 * math.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(power)
}
