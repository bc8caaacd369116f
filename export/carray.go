package export

import (
	"strconv"
	"strings"
)

const cIndent = "    "

// CArray renders values as a C float array initializer named name.
func (f Format) CArray(name string, values []float64) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = f.Value(v) + "f"
	}
	return f.cInitializer("float", name, tokens)
}

// CArrayQ15 renders Q15 samples as a C int16_t array initializer.
func (f Format) CArrayQ15(name string, values []int16) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = strconv.Itoa(int(v))
	}
	return f.cInitializer("int16_t", name, tokens)
}

func (f Format) cInitializer(ctype, name string, tokens []string) string {
	var b strings.Builder
	b.WriteString("static const ")
	b.WriteString(ctype)
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(len(tokens)))
	b.WriteString("] = {\n")
	if len(tokens) > 0 {
		f.wrap(&b, tokens, cIndent, cIndent, "")
		b.WriteByte('\n')
	}
	b.WriteString("};")
	return b.String()
}
