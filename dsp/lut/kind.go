package lut

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies the function a table samples.
type Kind int

const (
	KindSine Kind = iota
	KindCosine
	KindCosineMinusOne
)

var kindNames = map[Kind]string{
	KindSine:           "sin",
	KindCosine:         "cos",
	KindCosineMinusOne: "cosm1",
}

// String returns the short name used on the command line.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a short or long function name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin", "sine":
		return KindSine, nil
	case "cos", "cosine":
		return KindCosine, nil
	case "cosm1", "cos-1", "cosine-minus-one":
		return KindCosineMinusOne, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownKind, s)
}

// Symbol returns the C identifier conventionally used for the table.
func (k Kind) Symbol() string {
	switch k {
	case KindCosine:
		return "COSINE_LUT"
	case KindCosineMinusOne:
		return "COSm1_LUT"
	default:
		return "SINE_LUT"
	}
}

func (k Kind) eval(phase float64) float64 {
	switch k {
	case KindCosine:
		return math.Cos(phase)
	case KindCosineMinusOne:
		return math.Cos(phase) - 1
	default:
		return math.Sin(phase)
	}
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}
