package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color palette for prompts
var (
	PrimaryColor = lipgloss.Color("#FFAFD7") // Pink - cursor, ticks
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirmed answers
	ErrorColor   = lipgloss.Color("#FF5555") // Red - error lines
	WarningColor = lipgloss.Color("#FFA500") // Orange - capped selections
	MutedColor   = lipgloss.Color("#949494") // Gray - pagination, hints
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Default glyphs
const (
	DefaultCursor = ">"
	DefaultTick   = "✓"
	SecureEcho    = "*"
)

// Theme bundles glyphs and styles used when rendering prompts.
type Theme struct {
	Cursor      string
	CursorStyle lipgloss.Style
	Tick        string
	TickStyle   lipgloss.Style

	// HighlightStyle marks the option under the cursor in multi-select.
	HighlightStyle lipgloss.Style
	QuestionStyle  lipgloss.Style
	CaretStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	ErrorStyle     lipgloss.Style
	// WarningStyle renders messages about a capped selection.
	WarningStyle lipgloss.Style
	AnswerStyle  lipgloss.Style
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Cursor:      DefaultCursor,
		CursorStyle: lipgloss.NewStyle().Foreground(PrimaryColor),
		Tick:        DefaultTick,
		TickStyle:   lipgloss.NewStyle().Foreground(PrimaryColor),

		HighlightStyle: lipgloss.NewStyle().Foreground(PrimaryColor),
		QuestionStyle:  lipgloss.NewStyle().Foreground(TextColor).Bold(true),
		CaretStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(TextColor),
		MutedStyle:   lipgloss.NewStyle().Foreground(MutedColor),
		ErrorStyle:   lipgloss.NewStyle().Foreground(ErrorColor),
		WarningStyle: lipgloss.NewStyle().Foreground(WarningColor),
		AnswerStyle:  lipgloss.NewStyle().Foreground(SuccessColor),
	}
}

// ThemeSpec describes a theme by glyphs and color strings, as stored in
// config files. Empty fields keep the default.
type ThemeSpec struct {
	Cursor       string `yaml:"cursor,omitempty"`
	CursorColor  string `yaml:"cursor_color,omitempty"`
	Tick         string `yaml:"tick,omitempty"`
	TickColor    string `yaml:"tick_color,omitempty"`
	AccentColor  string `yaml:"accent_color,omitempty"`
	MutedColor   string `yaml:"muted_color,omitempty"`
	ErrorColor   string `yaml:"error_color,omitempty"`
	WarningColor string `yaml:"warning_color,omitempty"`
}

// Apply returns a copy of t with the non-empty spec fields applied.
func (t Theme) Apply(spec ThemeSpec) Theme {
	if spec.Cursor != "" {
		t.Cursor = spec.Cursor
	}
	if spec.CursorColor != "" {
		t.CursorStyle = t.CursorStyle.Foreground(lipgloss.Color(spec.CursorColor))
	}
	if spec.Tick != "" {
		t.Tick = spec.Tick
	}
	if spec.TickColor != "" {
		t.TickStyle = t.TickStyle.Foreground(lipgloss.Color(spec.TickColor))
	}
	if spec.AccentColor != "" {
		t.HighlightStyle = t.HighlightStyle.Foreground(lipgloss.Color(spec.AccentColor))
	}
	if spec.MutedColor != "" {
		t.MutedStyle = t.MutedStyle.Foreground(lipgloss.Color(spec.MutedColor))
	}
	if spec.ErrorColor != "" {
		t.ErrorStyle = t.ErrorStyle.Foreground(lipgloss.Color(spec.ErrorColor))
	}
	if spec.WarningColor != "" {
		t.WarningStyle = t.WarningStyle.Foreground(lipgloss.Color(spec.WarningColor))
	}
	return t
}

// Blank returns spaces covering the display width of s. Emoji cursors
// occupy two cells, so len() cannot be used.
func Blank(s string) string {
	return strings.Repeat(" ", runewidth.StringWidth(s))
}

// CursorPrefix renders the row prefix for a single-select row.
func (t Theme) CursorPrefix(active bool) string {
	if active {
		return t.CursorStyle.Render(t.Cursor) + " "
	}
	return Blank(t.Cursor) + " "
}

// TickBox renders the "[✓]" / "[ ]" checkbox of a multi-select row.
func (t Theme) TickBox(ticked bool) string {
	if ticked {
		return "[" + t.TickStyle.Render(t.Tick) + "]"
	}
	return "[" + Blank(t.Tick) + "]"
}
