package purity

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TimeStats holds time-domain properties of a table.
type TimeStats struct {
	Length        int
	DC            float64
	RMS           float64
	Min           float64
	Max           float64
	Peak          float64
	CrestFactor   float64
	ZeroCrossings int
}

// Stats computes time-domain properties. An empty table yields zero stats.
func Stats(values []float64) TimeStats {
	n := len(values)
	if n == 0 {
		return TimeStats{}
	}

	s := TimeStats{
		Length: n,
		DC:     stat.Mean(values, nil),
		RMS:    math.Sqrt(floats.Dot(values, values) / float64(n)),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
	s.Peak = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	for i := 1; i < n; i++ {
		if values[i-1]*values[i] < 0 {
			s.ZeroCrossings++
		}
	}
	return s
}
