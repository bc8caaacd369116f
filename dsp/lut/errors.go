package lut

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sinelut/dsp/core"
)

var errUnknownKind = errors.New("unknown table kind")

func validateConfig(cfg core.TableConfig) error {
	if cfg.Size <= 0 {
		return fmt.Errorf("table size must be > 0: %d", cfg.Size)
	}
	if !core.IsFinite(cfg.Amplitude) {
		return fmt.Errorf("table amplitude must be finite: %f", cfg.Amplitude)
	}
	return nil
}
