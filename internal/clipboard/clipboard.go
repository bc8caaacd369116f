// Package clipboard writes text to the operating system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard service can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to [Writer].
type WriterFunc func(text string) error

// WriteText calls f(text).
func (f WriterFunc) WriteText(text string) error { return f(text) }

// System writes to the OS clipboard through pbcopy, clip.exe, xclip, xsel,
// wl-copy or termux, whichever the platform provides.
type System struct{}

// WriteText replaces the clipboard contents with text.
func (System) WriteText(text string) error {
	if atotto.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Memory records the last text written. The zero value is ready to use.
type Memory struct {
	Text   string
	Writes int
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
