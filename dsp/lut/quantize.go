package lut

import (
	"math"

	"github.com/cwbudde/algo-sinelut/dsp/core"
)

const q15Scale = 32767

// QuantizeQ15 converts samples in [-1, 1] to signed Q15, rounding to nearest
// and saturating at the int16 limits.
func QuantizeQ15(values []float64) []int16 {
	out := make([]int16, len(values))
	for i, v := range values {
		out[i] = int16(core.Clamp(math.Round(v*q15Scale), math.MinInt16, math.MaxInt16))
	}
	return out
}
