package plot

// Point is a position in screen pixels.
type Point struct {
	X, Y float32
}

// Frame maps data coordinates into a pixel rectangle with a margin.
type Frame struct {
	Width, Height int
	Margin        float32
	Min, Max      float64
	Count         int
}

// NewFrame fits the y range to values. A flat table gets a unit range
// centred on its value.
func NewFrame(values []float64, width, height int, margin float32) Frame {
	f := Frame{Width: width, Height: height, Margin: margin, Count: len(values)}
	if len(values) == 0 {
		f.Min, f.Max = -1, 1
		return f
	}
	f.Min, f.Max = values[0], values[0]
	for _, v := range values[1:] {
		f.Min = min(f.Min, v)
		f.Max = max(f.Max, v)
	}
	if f.Max == f.Min {
		f.Min -= 0.5
		f.Max += 0.5
	}
	return f
}

// X returns the horizontal pixel for sample index i.
func (f Frame) X(i int) float32 {
	span := float32(f.Width) - 2*f.Margin
	if f.Count <= 1 {
		return f.Margin + span/2
	}
	return f.Margin + span*float32(i)/float32(f.Count-1)
}

// Y returns the vertical pixel for value v; larger values are higher up.
func (f Frame) Y(v float64) float32 {
	span := float64(f.Height) - 2*float64(f.Margin)
	return f.Margin + float32((f.Max-v)/(f.Max-f.Min)*span)
}

// Polyline maps every sample to its pixel position.
func (f Frame) Polyline(values []float64) []Point {
	out := make([]Point, len(values))
	for i, v := range values {
		out[i] = Point{X: f.X(i), Y: f.Y(v)}
	}
	return out
}

// ZeroLine reports the pixel row of y = 0 and whether it is inside the range.
func (f Frame) ZeroLine() (float32, bool) {
	if f.Min > 0 || f.Max < 0 {
		return 0, false
	}
	return f.Y(0), true
}
