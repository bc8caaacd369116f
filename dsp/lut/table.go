package lut

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sinelut/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultSize is the number of samples in a default table (12-bit phase).
const DefaultSize = core.DefaultTableSize

// Table is an immutable one-period lookup table.
type Table struct {
	kind   Kind
	cfg    core.TableConfig
	values []float64
	mask   uint32
	pow2   bool
}

// Generate builds a sine table. With no options it returns the 4096-point
// unit-amplitude table and never fails.
func Generate(opts ...core.TableOption) (*Table, error) {
	return New(KindSine, opts...)
}

// New builds a table of the given kind.
func New(kind Kind, opts ...core.TableOption) (*Table, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownKind, int(kind))
	}
	cfg := core.ApplyTableOptions(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	values := sample(kind, cfg.Size)
	if cfg.Amplitude != 1 {
		scaled := make([]float64, len(values))
		vecmath.ScaleBlock(scaled, values, cfg.Amplitude)
		values = scaled
	}

	t := &Table{
		kind:   kind,
		cfg:    cfg,
		values: values,
		pow2:   core.IsPowerOfTwo(cfg.Size),
	}
	if t.pow2 {
		t.mask = uint32(cfg.Size - 1)
	}
	return t, nil
}

// Sine returns n samples of one unit sine period, or nil for n <= 0.
func Sine(n int) []float64 {
	if n <= 0 {
		return nil
	}
	return sample(KindSine, n)
}

func sample(kind Kind, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		out[i] = kind.eval(step * float64(i))
	}
	return out
}

// Kind returns the sampled function.
func (t *Table) Kind() Kind { return t.kind }

// Size returns the number of samples per period.
func (t *Table) Size() int { return len(t.values) }

// Amplitude returns the configured peak value.
func (t *Table) Amplitude() float64 { return t.cfg.Amplitude }

// Values returns a copy of the samples.
func (t *Table) Values() []float64 {
	return append([]float64(nil), t.values...)
}

// At returns the sample for an integer phase, wrapping modulo Size.
func (t *Table) At(phase uint32) float64 {
	if t.pow2 {
		return t.values[phase&t.mask]
	}
	return t.values[phase%uint32(len(t.values))]
}

// Quarter returns the sample a quarter period ahead of phase. For a sine
// table this is the cosine. Exact only when Size is divisible by 4.
func (t *Table) Quarter(phase uint32) float64 {
	return t.At(phase + uint32(len(t.values)/4))
}
