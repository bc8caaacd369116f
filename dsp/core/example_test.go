package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-sinelut/dsp/core"
)

func ExampleApplyTableOptions() {
	cfg := core.ApplyTableOptions(
		core.WithSize(1024),
		core.WithAmplitude(0.5),
	)

	fmt.Printf("size=%d amplitude=%.1f\n", cfg.Size, cfg.Amplitude)

	// Output:
	// size=1024 amplitude=0.5
}
