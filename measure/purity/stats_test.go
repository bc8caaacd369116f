package purity

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sinelut/dsp/lut"
	"github.com/cwbudde/algo-sinelut/internal/testutil"
)

func TestStatsSineTable(t *testing.T) {
	s := Stats(lut.Sine(lut.DefaultSize))
	if s.Length != 4096 {
		t.Fatalf("Length = %d, want 4096", s.Length)
	}
	testutil.RequireNearlyEqual(t, "DC", s.DC, 0, 1e-12)
	testutil.RequireNearlyEqual(t, "RMS", s.RMS, 1/math.Sqrt2, 1e-12)
	testutil.RequireNearlyEqual(t, "Min", s.Min, -1, 1e-15)
	testutil.RequireNearlyEqual(t, "Max", s.Max, 1, 1e-15)
	testutil.RequireNearlyEqual(t, "Peak", s.Peak, 1, 1e-15)
	testutil.RequireNearlyEqual(t, "CrestFactor", s.CrestFactor, math.Sqrt2, 1e-12)
	if s.ZeroCrossings != 1 {
		t.Fatalf("ZeroCrossings = %d, want 1", s.ZeroCrossings)
	}
}

func TestStatsDC(t *testing.T) {
	s := Stats(testutil.DC(-0.25, 8))
	testutil.RequireNearlyEqual(t, "DC", s.DC, -0.25, 1e-15)
	testutil.RequireNearlyEqual(t, "Peak", s.Peak, 0.25, 0)
	testutil.RequireNearlyEqual(t, "CrestFactor", s.CrestFactor, 1, 1e-15)
}

func TestStatsEmpty(t *testing.T) {
	if s := Stats(nil); s != (TimeStats{}) {
		t.Fatalf("Stats(nil) = %+v, want zero", s)
	}
}
