package export

import (
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sinelut/dsp/lut"
)

func TestValue(t *testing.T) {
	f := DefaultFormat()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000000"},
		{1, "1.000000"},
		{-1, "-1.000000"},
		{math.Sin(2 * math.Pi * 1024 / 4096), "1.000000"},
		{math.Sin(2 * math.Pi / 4096), "0.001534"},
		{-1e-17, "0.000000"},
		{math.Copysign(0, -1), "0.000000"},
		{-0.0000004, "0.000000"},
		{-0.0000006, "-0.000001"},
	}
	for _, tt := range tests {
		if got := f.Value(tt.in); got != tt.want {
			t.Fatalf("Value(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValueNegativePrecisionFallsBack(t *testing.T) {
	f := Format{Precision: -1}
	if got := f.Value(0.25); got != "0.250000" {
		t.Fatalf("Value() = %q, want 0.250000", got)
	}
}

func TestArray(t *testing.T) {
	got := DefaultFormat().Array([]float64{0, 0.5, -1})
	want := "[0.000000, 0.500000, -1.000000]"
	if got != want {
		t.Fatalf("Array() = %q, want %q", got, want)
	}
}

func TestArrayEmpty(t *testing.T) {
	f := DefaultFormat()
	if got := f.Array(nil); got != "[]" {
		t.Fatalf("Array(nil) = %q", got)
	}
	if got := f.Wrapped(nil); got != "[]" {
		t.Fatalf("Wrapped(nil) = %q", got)
	}
}

func TestWrappedSmall(t *testing.T) {
	f := Format{Precision: 1, Separator: ", ", LineWidth: 12}
	got := f.Wrapped([]float64{0.1, 0.2, 0.3, 0.4})
	want := "[0.1, 0.2,\n 0.3, 0.4]"
	if got != want {
		t.Fatalf("Wrapped() = %q, want %q", got, want)
	}
}

func TestWrappedDisabled(t *testing.T) {
	f := Format{Precision: 1, Separator: ", "}
	values := []float64{0.1, 0.2, 0.3, 0.4}
	if f.Wrapped(values) != f.Array(values) {
		t.Fatal("expected Wrapped to equal Array when LineWidth <= 0")
	}
}

func TestWrappedSineTable(t *testing.T) {
	f := DefaultFormat()
	values := lut.Sine(lut.DefaultSize)
	wrapped := f.Wrapped(values)

	lines := strings.Split(wrapped, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %d line(s)", len(lines))
	}
	for i, line := range lines {
		if len(line) > DefaultLineWidth {
			t.Fatalf("line %d has %d columns, want <= %d", i, len(line), DefaultLineWidth)
		}
		if i > 0 && !strings.HasPrefix(line, " ") {
			t.Fatalf("continuation line %d not indented: %q", i, line)
		}
		if i < len(lines)-1 && !strings.HasSuffix(line, ",") {
			t.Fatalf("line %d does not end after a separator: %q", i, line)
		}
	}
	if !strings.HasPrefix(wrapped, "[0.000000, 0.001534, ") {
		t.Fatalf("unexpected prefix: %q", wrapped[:40])
	}
	if !strings.HasSuffix(wrapped, "-0.001534]") {
		t.Fatalf("unexpected suffix: %q", wrapped[len(wrapped)-20:])
	}

	unwrapped := strings.ReplaceAll(wrapped, ",\n ", ", ")
	if unwrapped != f.Array(values) {
		t.Fatal("unwrapping Wrapped() does not reproduce Array()")
	}
}

func TestWrappedSemicolonSeparator(t *testing.T) {
	f := Format{Precision: 0, Separator: ";", LineWidth: 5}
	got := f.Wrapped([]float64{1, 2, 3})
	want := "[1;2;\n 3]"
	if got != want {
		t.Fatalf("Wrapped() = %q, want %q", got, want)
	}
}
