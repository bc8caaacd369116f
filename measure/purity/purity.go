package purity

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-sinelut/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const defaultMaxHarmonics = 10

// ErrSize is returned for tables whose length is not a power of two >= 4.
var ErrSize = errors.New("table length must be a power of two >= 4")

// Config holds purity analysis parameters.
type Config struct {
	// Cycles is the number of periods in the table, i.e. the fundamental bin.
	Cycles int
	// MaxHarmonics limits how many harmonics (2nd, 3rd, ...) enter THD.
	MaxHarmonics int
}

// Result holds purity measurements. Levels are single-sided peak amplitudes.
//
//nolint:revive
type Result struct {
	FundamentalBin   int
	FundamentalLevel float64
	DC               float64
	Harmonics        []float64 // relative to the fundamental, 2nd harmonic first
	THD              float64
	THD_dB           float64
	SpurBin          int
	SFDR_dB          float64
	SNR_dB           float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.Cycles <= 0 {
		cfg.Cycles = 1
	}
	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}
	return cfg
}

// Analyze computes spectral purity metrics of a table.
func Analyze(values []float64, cfg Config) (Result, error) {
	n := len(values)
	if n < 4 || !core.IsPowerOfTwo(n) {
		return Result{}, fmt.Errorf("%w: %d", ErrSize, n)
	}
	cfg = normalizeConfig(cfg)
	half := n / 2
	if cfg.Cycles >= half {
		return Result{}, fmt.Errorf("fundamental bin %d must be below Nyquist bin %d", cfg.Cycles, half)
	}

	power, err := powerSpectrum(values)
	if err != nil {
		return Result{}, err
	}

	// Single-sided peak amplitude of bin k (0 < k < n/2) is 2*|X[k]|/n.
	scale := 4 / float64(n) / float64(n)
	amp := func(k int) float64 { return math.Sqrt(power[k] * scale) }

	fund := cfg.Cycles
	fundPower := power[fund]
	res := Result{
		FundamentalBin:   fund,
		FundamentalLevel: amp(fund),
		DC:               math.Sqrt(power[0]) / float64(n),
	}
	if fundPower == 0 {
		return res, nil
	}

	harmonicPower := 0.0
	harmonics := make([]float64, 0, cfg.MaxHarmonics)
	for h := 2; h <= cfg.MaxHarmonics+1; h++ {
		bin := h * fund
		if bin >= half {
			break
		}
		harmonicPower += power[bin]
		harmonics = append(harmonics, math.Sqrt(power[bin]/fundPower))
	}

	spurPower := 0.0
	noisePower := 0.0
	for k := 1; k <= half; k++ {
		if k == fund {
			continue
		}
		p := power[k]
		if k == half {
			// Nyquist has no mirror image.
			p /= 4
		}
		noisePower += p
		if p > spurPower {
			spurPower = p
			res.SpurBin = k
		}
	}

	res.Harmonics = harmonics
	res.THD = math.Sqrt(harmonicPower / fundPower)
	res.THD_dB = core.LinearToDB(res.THD)
	res.SFDR_dB = ratioDB(fundPower, spurPower)
	res.SNR_dB = ratioDB(fundPower, noisePower)
	return res, nil
}

// ratioDB returns 10*log10(signal/noise), +Inf for a silent noise floor.
func ratioDB(signal, noise float64) float64 {
	if noise == 0 {
		return math.Inf(1)
	}
	return core.LinearPowerToDB(signal / noise)
}

// powerSpectrum returns |X[k]|^2 for k in [0, n/2].
func powerSpectrum(values []float64) ([]float64, error) {
	n := len(values)
	in := make([]complex128, n)
	for i, v := range values {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)
	return power, nil
}
