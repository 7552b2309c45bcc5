package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{-5, 0},
		{10, MinTerminalWidth},
		{80, 80},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGetTerminalWidth_NotATerminal(t *testing.T) {
	if w := GetTerminalWidth(&bytes.Buffer{}); w != 0 {
		t.Errorf("Expected 0 for a buffer, got %d", w)
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if w := GetTerminalWidth(f); w != 0 {
		t.Errorf("Expected 0 for a regular file, got %d", w)
	}
	if _, _, ok := GetTerminalSize(f); ok {
		t.Error("Expected a regular file not to report a terminal size")
	}
	if _, _, ok := GetTerminalSize(nil); ok {
		t.Error("Expected nil file not to report a terminal size")
	}
}

type wideHelp []key.Binding

func (h wideHelp) ShortHelp() []key.Binding  { return h }
func (h wideHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func TestHelpLine_Width(t *testing.T) {
	km := wideHelp{
		key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev page")),
		key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next page")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	}

	full := HelpLine(km, 0)
	if !strings.Contains(full, "confirm") {
		t.Errorf("Expected untruncated help to show every binding, got %q", full)
	}

	narrow := HelpLine(km, MinTerminalWidth)
	if strings.Contains(narrow, "confirm") {
		t.Errorf("Expected help cut to %d cells, got %q", MinTerminalWidth, narrow)
	}
}
