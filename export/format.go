package export

import (
	"strconv"
	"strings"
)

const (
	DefaultPrecision = 6
	DefaultSeparator = ", "
	DefaultLineWidth = 150
)

// Format controls how values are rendered.
type Format struct {
	// Precision is the number of fractional digits.
	Precision int
	// Separator goes between consecutive values.
	Separator string
	// LineWidth is the maximum column count of wrapped output.
	// Zero or negative disables wrapping.
	LineWidth int
}

// DefaultFormat returns six fractional digits, ", " separators and a
// 150-column wrap width.
func DefaultFormat() Format {
	return Format{
		Precision: DefaultPrecision,
		Separator: DefaultSeparator,
		LineWidth: DefaultLineWidth,
	}
}

// Value renders a single value. Negative zero renders as zero.
func (f Format) Value(v float64) string {
	prec := f.Precision
	if prec < 0 {
		prec = DefaultPrecision
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// Array renders values as a single-line bracketed list.
func (f Format) Array(values []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(f.Separator)
		}
		b.WriteString(f.Value(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Wrapped renders values like Array but breaks lines after a separator so
// that no line is longer than LineWidth. Continuation lines are indented to
// line up with the first value.
func (f Format) Wrapped(values []float64) string {
	if f.LineWidth <= 0 {
		return f.Array(values)
	}
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = f.Value(v)
	}
	var b strings.Builder
	f.wrap(&b, tokens, "[", " ", "]")
	return b.String()
}

// wrap writes tokens joined by the separator, starting the first line with
// open, continuation lines with indent, and ending with close. A separator
// that ends a line loses its trailing whitespace.
func (f Format) wrap(b *strings.Builder, tokens []string, open, indent, closing string) {
	head := strings.TrimRight(f.Separator, " \t")
	gap := f.Separator[len(head):]

	line := open
	fresh := true
	for i, tok := range tokens {
		word := tok + head
		if i == len(tokens)-1 {
			word = tok + closing
		}

		candidate := line + word
		if !fresh {
			candidate = line + gap + word
		}
		if !fresh && f.LineWidth > 0 && len(candidate) > f.LineWidth {
			b.WriteString(line)
			b.WriteByte('\n')
			line = indent + word
		} else {
			line = candidate
		}
		fresh = false
	}
	if len(tokens) == 0 {
		line += closing
	}
	b.WriteString(line)
}
