package app

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-sinelut/dsp/lut"
	"github.com/cwbudde/algo-sinelut/export"
)

// Output selects the text rendering of the table.
type Output int

const (
	OutputArray Output = iota
	OutputCFloat
	OutputCQ15
)

var outputNames = []string{"array", "c-float", "c-q15"}

// String returns the flag spelling of o.
func (o Output) String() string {
	if int(o) >= 0 && int(o) < len(outputNames) {
		return outputNames[o]
	}
	return fmt.Sprintf("Output(%d)", int(o))
}

// ParseOutput resolves a -format flag value.
func ParseOutput(s string) (Output, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range outputNames {
		if s == name {
			return Output(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(outputNames, ", "))
}

// Config holds everything a run needs.
type Config struct {
	Kind      lut.Kind
	Size      int
	Amplitude float64

	// ShowPlot opens the blocking plot window before any output.
	ShowPlot bool
	// CopyToClipboard places the rendered table on the clipboard.
	CopyToClipboard bool
	// ClipboardBestEffort logs clipboard failures instead of failing the run.
	ClipboardBestEffort bool
	// WrapClipboard copies the wrapped rendering instead of a single line.
	WrapClipboard bool

	Output Output
	// Name is the C symbol for C outputs; empty selects the kind's default.
	Name   string
	Format export.Format

	// Analyze logs time-domain and spectral statistics of the table.
	Analyze bool
}

// DefaultConfig reproduces the plain run: a 4096-point unit sine, plotted,
// printed and copied.
func DefaultConfig() Config {
	return Config{
		Kind:            lut.KindSine,
		Size:            lut.DefaultSize,
		Amplitude:       1,
		ShowPlot:        true,
		CopyToClipboard: true,
		Output:          OutputArray,
		Format:          export.DefaultFormat(),
	}
}

func (c Config) symbol() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Kind.Symbol()
}
