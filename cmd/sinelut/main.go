// Command sinelut generates a one-period sine lookup table, plots it, prints
// it and copies it to the clipboard.
//
// Usage:
//
//	sinelut [flags]
//
// Without flags it shows the 4096-point table in a window, prints it once
// the window is closed, prints the element count and copies the table to
// the clipboard as a single-line array literal.
//
// Examples:
//
//	sinelut
//	sinelut -plot=false
//	sinelut -plot=false -format c-q15
//	sinelut -kind cosm1 -format c-float -analyze
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-sinelut/dsp/lut"
	"github.com/cwbudde/algo-sinelut/export"
	"github.com/cwbudde/algo-sinelut/internal/app"
	"github.com/cwbudde/algo-sinelut/internal/clipboard"
	"github.com/cwbudde/algo-sinelut/internal/logging"
	"github.com/cwbudde/algo-sinelut/internal/plot"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("sinelut", flag.ContinueOnError)
	size := fs.Int("size", lut.DefaultSize, "number of samples per period")
	kind := fs.String("kind", "sin", "table function: sin, cos or cosm1")
	amplitude := fs.Float64("amplitude", 1, "peak value of the table")
	showPlot := fs.Bool("plot", true, "show the table in a window before printing")
	copyClip := fs.Bool("clipboard", true, "copy the table to the clipboard")
	bestEffort := fs.Bool("clipboard-best-effort", false, "log clipboard failures instead of exiting with an error")
	wrapClip := fs.Bool("wrap-clipboard", false, "copy the wrapped rendering instead of a single line")
	format := fs.String("format", "array", "output format: array, c-float or c-q15")
	name := fs.String("name", "", "C symbol for c-float and c-q15 output (default by kind)")
	precision := fs.Int("precision", export.DefaultPrecision, "fractional digits per value")
	width := fs.Int("width", export.DefaultLineWidth, "wrap width of printed output, 0 disables wrapping")
	analyze := fs.Bool("analyze", false, "log time-domain and spectral purity statistics")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sinelut [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates a one-period lookup table, plots it, prints it and copies it to the clipboard.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sinelut\n")
		fmt.Fprintf(os.Stderr, "  sinelut -plot=false -format c-q15\n")
		fmt.Fprintf(os.Stderr, "  sinelut -kind cosm1 -format c-float -analyze\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	log := logging.New(logging.WithLevel(level), logging.WithFields(zap.String("cmd", "sinelut")))
	defer func() { _ = log.Sync() }()

	cfg := app.DefaultConfig()
	cfg.Size = *size
	cfg.Amplitude = *amplitude
	cfg.ShowPlot = *showPlot
	cfg.CopyToClipboard = *copyClip
	cfg.ClipboardBestEffort = *bestEffort
	cfg.WrapClipboard = *wrapClip
	cfg.Name = *name
	cfg.Format.Precision = *precision
	cfg.Format.LineWidth = *width
	cfg.Analyze = *analyze

	if cfg.Kind, err = lut.ParseKind(*kind); err != nil {
		log.Error("invalid flag", zap.String("flag", "kind"), zap.Error(err))
		return 2
	}
	if cfg.Output, err = app.ParseOutput(*format); err != nil {
		log.Error("invalid flag", zap.String("flag", "format"), zap.Error(err))
		return 2
	}

	if err := app.New(cfg, app.WithLogger(log)).Run(); err != nil {
		switch {
		case errors.Is(err, plot.ErrDisplayUnavailable):
			log.Error("no display available, rerun with -plot=false", zap.Error(err))
		case errors.Is(err, clipboard.ErrUnavailable):
			log.Error("clipboard unavailable, rerun with -clipboard=false or -clipboard-best-effort", zap.Error(err))
		default:
			log.Error("sinelut failed", zap.Error(err))
		}
		return 1
	}
	return 0
}
