package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlank_UsesDisplayWidth(t *testing.T) {
	tests := []struct {
		glyph string
		want  int
	}{
		{">", 1},
		{"->", 2},
		{"✓", 1},
		{"😋", 2},
		{"", 0},
	}
	for _, tt := range tests {
		if got := len(Blank(tt.glyph)); got != tt.want {
			t.Errorf("Blank(%q): expected %d spaces, got %d", tt.glyph, tt.want, got)
		}
	}
}

func TestTheme_CursorPrefix(t *testing.T) {
	theme := DefaultTheme()

	active := theme.CursorPrefix(true)
	if !strings.Contains(active, ">") {
		t.Errorf("Expected active prefix to contain cursor, got %q", active)
	}
	if got := theme.CursorPrefix(false); got != "  " {
		t.Errorf("Expected two spaces for inactive prefix, got %q", got)
	}
}

func TestTheme_TickBox(t *testing.T) {
	theme := DefaultTheme()
	theme.Tick = "x"

	if got := theme.TickBox(false); got != "[ ]" {
		t.Errorf("Expected '[ ]', got %q", got)
	}
	if got := theme.TickBox(true); !strings.Contains(got, "x") || !strings.HasPrefix(got, "[") {
		t.Errorf("Expected ticked box, got %q", got)
	}
}

func TestTheme_Apply(t *testing.T) {
	theme := DefaultTheme().Apply(ThemeSpec{Cursor: "🢧", Tick: "x"})
	if theme.Cursor != "🢧" {
		t.Errorf("Expected cursor override, got %q", theme.Cursor)
	}
	if theme.Tick != "x" {
		t.Errorf("Expected tick override, got %q", theme.Tick)
	}

	warn := DefaultTheme().Apply(ThemeSpec{WarningColor: "#00FF00"})
	if warn.WarningStyle.GetForeground() != lipgloss.Color("#00FF00") {
		t.Errorf("Expected warning colour override, got %v", warn.WarningStyle.GetForeground())
	}
	if DefaultTheme().WarningStyle.GetForeground() != WarningColor {
		t.Error("Expected default warning style to use WarningColor")
	}

	unchanged := DefaultTheme().Apply(ThemeSpec{})
	if unchanged.Cursor != DefaultCursor || unchanged.Tick != DefaultTick {
		t.Error("Expected empty spec to keep defaults")
	}
}
