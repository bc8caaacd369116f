package core

import "math"

// DefaultTableSize is the period length used when no size is configured.
const DefaultTableSize = 4096

// TableConfig defines common lookup table settings.
type TableConfig struct {
	Size      int
	Amplitude float64
}

// TableOption mutates a TableConfig.
type TableOption func(*TableConfig)

// DefaultTableConfig returns the unit-amplitude 4096-point configuration.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Size:      DefaultTableSize,
		Amplitude: 1,
	}
}

// WithSize sets the number of samples per period.
// Values below 1 are kept so that validation can report them.
func WithSize(size int) TableOption {
	return func(cfg *TableConfig) {
		cfg.Size = size
	}
}

// WithAmplitude sets the peak value of the table.
func WithAmplitude(amplitude float64) TableOption {
	return func(cfg *TableConfig) {
		cfg.Amplitude = amplitude
	}
}

// ApplyTableOptions applies zero or more options to the default config.
func ApplyTableOptions(opts ...TableOption) TableConfig {
	cfg := DefaultTableConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
