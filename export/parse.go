package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when text is not a bracketed list of numbers.
var ErrMalformed = errors.New("malformed array text")

// ParseArray reads the output of [Format.Array] or [Format.Wrapped] back
// into values. Any whitespace, including line breaks, is accepted around
// elements.
func ParseArray(text string) ([]float64, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%w: missing brackets", ErrMalformed)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []float64{}, nil
	}

	fields := strings.Split(inner, ",")
	out := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
		}
		out[i] = v
	}
	return out, nil
}
