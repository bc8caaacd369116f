package plot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	margin        = 40
)

var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	axisColor       = color.RGBA{0x40, 0x40, 0x40, 0xff}
	gridColor       = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
	lineColor       = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
)

// Options configures the plot window.
type Options struct {
	Title         string
	Width, Height int
}

// Show opens a window with values drawn as a line chart and blocks until
// the window is closed or Escape/Q is pressed.
func Show(values []float64, opts Options) error {
	if err := checkDisplay(runtime.GOOS, os.Getenv); err != nil {
		return err
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	c := &chart{values: values}
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
	}
	return nil
}

type chart struct {
	values []float64
	canvas *ebiten.Image
}

func (c *chart) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (c *chart) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Empty() {
		return
	}
	if c.canvas == nil || c.canvas.Bounds() != b {
		if c.canvas != nil {
			c.canvas.Deallocate()
		}
		c.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		c.render(c.canvas)
	}
	screen.DrawImage(c.canvas, nil)
}

func (c *chart) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// render draws the chart once per canvas size.
func (c *chart) render(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	f := NewFrame(c.values, w, h, margin)

	left, right := float32(margin), float32(w-margin)
	top, bottom := float32(margin), float32(h-margin)

	if y, ok := f.ZeroLine(); ok {
		vector.StrokeLine(dst, left, y, right, y, 1, gridColor, false)
	}
	vector.StrokeLine(dst, left, top, left, bottom, 1, axisColor, false)
	vector.StrokeLine(dst, left, bottom, right, bottom, 1, axisColor, false)

	pts := f.Polyline(c.values)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 1.5, lineColor, true)
	}
}
