// Package app runs the generate, plot, print and copy pipeline.
package app

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-sinelut/dsp/core"
	"github.com/cwbudde/algo-sinelut/dsp/lut"
	"github.com/cwbudde/algo-sinelut/internal/clipboard"
	"github.com/cwbudde/algo-sinelut/internal/plot"
	"github.com/cwbudde/algo-sinelut/measure/purity"
	"go.uber.org/zap"
)

// Plotter displays values and returns once the display is dismissed.
type Plotter interface {
	Plot(title string, values []float64) error
}

// PlotterFunc adapts a function to [Plotter].
type PlotterFunc func(title string, values []float64) error

// Plot calls f(title, values).
func (f PlotterFunc) Plot(title string, values []float64) error { return f(title, values) }

// WindowPlotter shows values in a desktop window.
type WindowPlotter struct{}

// Plot blocks until the window is closed.
func (WindowPlotter) Plot(title string, values []float64) error {
	return plot.Show(values, plot.Options{Title: title})
}

// Runner executes one pipeline run.
type Runner struct {
	cfg     Config
	log     *zap.Logger
	stdout  io.Writer
	plotter Plotter
	clip    clipboard.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithStdout redirects the table output.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

// WithPlotter replaces the window plotter.
func WithPlotter(p Plotter) Option {
	return func(r *Runner) { r.plotter = p }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(r *Runner) { r.clip = w }
}

// New creates a Runner with OS-backed collaborators unless overridden.
func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		log:     zap.NewNop(),
		stdout:  os.Stdout,
		plotter: WindowPlotter{},
		clip:    clipboard.System{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run generates the table, shows it, prints it with its element count and
// copies it to the clipboard, in that order.
func (r *Runner) Run() error {
	cfg := r.cfg
	tab, err := lut.New(cfg.Kind, core.WithSize(cfg.Size), core.WithAmplitude(cfg.Amplitude))
	if err != nil {
		return fmt.Errorf("generate table: %w", err)
	}
	values := tab.Values()
	r.log.Debug("table generated",
		zap.Stringer("kind", tab.Kind()),
		zap.Int("size", tab.Size()),
		zap.Float64("amplitude", tab.Amplitude()),
	)

	if cfg.ShowPlot {
		title := fmt.Sprintf("%s lookup table (%d points)", tab.Kind(), tab.Size())
		if err := r.plotter.Plot(title, values); err != nil {
			return fmt.Errorf("plot table: %w", err)
		}
	}

	if cfg.Output == OutputCQ15 {
		if peak := maxAbs(values); peak > 1 {
			r.log.Warn("table exceeds Q15 range, values will saturate", zap.Float64("peak", peak))
		}
	}

	if _, err := fmt.Fprintln(r.stdout, r.render(values, true)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if _, err := fmt.Fprintln(r.stdout, tab.Size()); err != nil {
		return fmt.Errorf("write table size: %w", err)
	}

	if cfg.Analyze {
		r.analyze(values)
	}

	if !cfg.CopyToClipboard {
		return nil
	}
	text := r.render(values, cfg.WrapClipboard)
	if err := r.clip.WriteText(text); err != nil {
		if cfg.ClipboardBestEffort {
			r.log.Warn("clipboard copy skipped", zap.Error(err))
			return nil
		}
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	r.log.Info("table copied to clipboard",
		zap.Stringer("format", cfg.Output),
		zap.Int("chars", len(text)),
	)
	return nil
}

// render formats values for the configured output. wrapped selects the
// line-folded form.
func (r *Runner) render(values []float64, wrapped bool) string {
	f := r.cfg.Format
	if !wrapped {
		f.LineWidth = 0
	}
	switch r.cfg.Output {
	case OutputCFloat:
		return f.CArray(r.cfg.symbol(), values)
	case OutputCQ15:
		return f.CArrayQ15(r.cfg.symbol(), lut.QuantizeQ15(values))
	default:
		if wrapped {
			return f.Wrapped(values)
		}
		return f.Array(values)
	}
}

// analyze logs statistics of the table as it will be exported. Spectral
// analysis needs a power-of-two size and is skipped otherwise.
func (r *Runner) analyze(values []float64) {
	if r.cfg.Output == OutputCQ15 {
		q := lut.QuantizeQ15(values)
		values = make([]float64, len(q))
		for i, v := range q {
			values[i] = float64(v) / 32767
		}
	}

	s := purity.Stats(values)
	r.log.Info("table statistics",
		zap.Int("length", s.Length),
		zap.Float64("dc", s.DC),
		zap.Float64("rms", s.RMS),
		zap.Float64("min", s.Min),
		zap.Float64("max", s.Max),
		zap.Float64("crest_factor", s.CrestFactor),
		zap.Int("zero_crossings", s.ZeroCrossings),
	)

	res, err := purity.Analyze(values, purity.Config{})
	if err != nil {
		r.log.Warn("table purity skipped", zap.Error(err))
		return
	}
	r.log.Info("table purity",
		zap.Float64("fundamental", res.FundamentalLevel),
		zap.Float64("thd", res.THD),
		zap.Float64("thd_db", res.THD_dB),
		zap.Int("spur_bin", res.SpurBin),
		zap.Float64("sfdr_db", res.SFDR_dB),
		zap.Float64("snr_db", res.SNR_dB),
	)
}

func maxAbs(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}
