package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// GetTerminalSize returns the size of the terminal f is attached to.
// ok is false when f is not a terminal.
func GetTerminalSize(f *os.File) (width, height int, ok bool) {
	if f == nil {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// GetTerminalWidth returns the clamped width of the terminal behind w, the
// writer the prompt draws on, or 0 when w is not a terminal.
func GetTerminalWidth(w io.Writer) int {
	f, isFile := w.(*os.File)
	if !isFile {
		return 0
	}
	width, _, ok := GetTerminalSize(f)
	if !ok {
		return 0
	}
	return ClampWidth(width)
}

// ClampWidth limits width to the supported range. Zero or less means
// unknown and is returned unchanged.
func ClampWidth(width int) int {
	switch {
	case width <= 0:
		return 0
	case width < MinTerminalWidth:
		return MinTerminalWidth
	case width > MaxContentWidth:
		return MaxContentWidth
	}
	return width
}
