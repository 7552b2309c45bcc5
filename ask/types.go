package ask

import (
	"errors"

	"github.com/muurk/tuiprompt/internal/engine"
	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/loop"
	"github.com/muurk/tuiprompt/internal/ui"
)

// Key is a single keypress.
type Key = keys.Key

// KeyMap holds the bindings every prompt dispatches on.
type KeyMap = keys.KeyMap

// Theme bundles the glyphs and styles used to draw prompts.
type Theme = ui.Theme

// ThemeSpec describes theme overrides as glyphs and colour strings.
type ThemeSpec = ui.ThemeSpec

// Terminal is the keyboard and screen boundary prompts run against.
type Terminal = loop.Terminal

// ScriptedTerminal replays keys and records frames, for tests and
// non-interactive use.
type ScriptedTerminal = loop.Scripted

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return keys.DefaultKeyMap()
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return ui.DefaultTheme()
}

// ParseKey turns a binding name ("enter", "space", "x") into a Key.
func ParseKey(s string) Key {
	return keys.Parse(s)
}

// NewScriptedTerminal creates a terminal that replays a comma separated
// key script such as "down,down,enter". A literal comma is "comma".
func NewScriptedTerminal(script string) *ScriptedTerminal {
	return loop.NewScriptedFromString(script)
}

// Errors returned by prompts.
type (
	// ConversionError reports typed text that the converter rejected.
	ConversionError = engine.ConversionError
	// ValidationError reports a converted value the validator rejected.
	ValidationError = engine.ValidationError
	// AbortError is returned on escape when Settings.RaiseOnEscape is set.
	AbortError = engine.AbortError
)

var (
	// ErrAborted matches every *AbortError with errors.Is.
	ErrAborted = engine.ErrAborted
	// ErrInterrupted is returned on ctrl+c when Settings.RaiseOnInterrupt
	// is set.
	ErrInterrupted = engine.ErrInterrupted
	// ErrEmptyOptions is returned by strict selects given no options.
	ErrEmptyOptions = engine.ErrEmptyOptions
	// ErrNotTerminal is returned when no Terminal was injected and
	// standard input is not a tty.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrInputClosed is returned when input ends before a prompt finishes.
	ErrInputClosed = loop.ErrInputClosed
)
