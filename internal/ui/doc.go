// Package ui provides the presentation layer shared by all prompts.
//
// This package uses Lipgloss for styling and Bubble Tea components for the
// pieces that animate or describe key bindings. It holds no prompt state;
// the engines in internal/engine build their frames from a Theme and hand
// plain strings to the interaction loop.
//
// # Components
//
//   - Theme: cursor and tick glyphs plus the styles of every frame element
//   - HelpLine: the footer hint rendered with bubbles/help, cut to the
//     width of the terminal the prompt draws on (see GetTerminalWidth)
//   - Spinner: a decorative bubbles/spinner running in its own program
//   - Printer: result and error output for the command line tool
//
// # Glyph Width
//
// Cursor and tick glyphs may be emoji. Unselected rows are padded with
// Blank(), which measures display cells with go-runewidth so columns stay
// aligned regardless of the glyph.
//
// # Logging Integration
//
// Nothing in this package logs. Prompt frames are written to the
// terminal; zap output is routed to stderr by internal/logging and stays
// silent unless TUIPROMPT_LOG_LEVEL is set.
package ui
