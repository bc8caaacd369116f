package plot

import (
	"errors"
	"fmt"
)

// ErrDisplayUnavailable is returned when no display surface can be opened.
var ErrDisplayUnavailable = errors.New("display unavailable")

// checkDisplay reports ErrDisplayUnavailable on X11/Wayland platforms when
// neither DISPLAY nor WAYLAND_DISPLAY is set.
func checkDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
	default:
		return nil
	}
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", ErrDisplayUnavailable)
	}
	return nil
}
