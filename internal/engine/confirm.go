package engine

import (
	"strings"

	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/ui"
)

// ConfirmConfig configures a yes/no question.
type ConfirmConfig struct {
	Question string
	YesText  string
	NoText   string
	// MatchCase makes typed prefixes case sensitive.
	MatchCase bool
	// EnterEmptyConfirms lets enter accept the default before anything
	// is typed.
	EnterEmptyConfirms bool
	DefaultIsYes       bool
	// CharPrompt appends a " (Y/N)" hint built from the first letters.
	CharPrompt bool
	Keys       keys.KeyMap
	Theme      ui.Theme
	HideHelp   bool
}

// Confirm answers a yes/no question by arrows or by typing a prefix.
type Confirm struct {
	status
	layout
	cfg      ConfirmConfig
	yes      bool
	selected bool
	typed    string
}

// NewConfirm creates a confirm engine. Empty labels become Yes and No.
func NewConfirm(cfg ConfirmConfig) *Confirm {
	if cfg.YesText == "" {
		cfg.YesText = "Yes"
	}
	if cfg.NoText == "" {
		cfg.NoText = "No"
	}
	return &Confirm{
		cfg:      cfg,
		yes:      cfg.DefaultIsYes,
		selected: cfg.EnterEmptyConfirms,
	}
}

// Update handles one keypress.
func (c *Confirm) Update(k keys.Key) error {
	if c.done != Running {
		return nil
	}
	km := c.cfg.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		c.finish(Interrupted, k)
	case keys.Matches(k, km.Up, km.Down):
		c.yes = !c.yes
		c.selected = true
		c.typed = c.label(c.yes)
	case keys.Matches(k, km.Backspace):
		c.backspace()
	case keys.Matches(k, km.Confirm):
		if c.selected {
			c.finish(Confirmed, k)
		}
	case keys.Matches(k, km.Tab):
		if c.selected {
			c.typed = c.label(c.yes)
		}
	case keys.Matches(k, km.Escape):
		c.finish(Escaped, k)
	case k.IsPrintable():
		c.typed += k.Text
		c.match()
	}
	return nil
}

func (c *Confirm) label(yes bool) string {
	if yes {
		return c.cfg.YesText
	}
	return c.cfg.NoText
}

func (c *Confirm) hasPrefix(label string) bool {
	if c.cfg.MatchCase {
		return strings.HasPrefix(label, c.typed)
	}
	return strings.HasPrefix(strings.ToLower(label), strings.ToLower(c.typed))
}

// match selects the choice whose label starts with the typed text. No
// wins when both match.
func (c *Confirm) match() {
	switch {
	case c.hasPrefix(c.cfg.NoText):
		c.yes = false
		c.selected = true
	case c.hasPrefix(c.cfg.YesText):
		c.yes = true
		c.selected = true
	default:
		c.selected = false
	}
}

// backspace trims one rune. Clearing the text restores the empty-input
// selection state, and an unmatched text that shrinks to a matching
// prefix selects again. A live selection is otherwise left alone.
func (c *Confirm) backspace() {
	rs := []rune(c.typed)
	if len(rs) == 0 {
		return
	}
	c.typed = string(rs[:len(rs)-1])

	switch {
	case c.typed == "":
		c.selected = c.cfg.EnterEmptyConfirms
	case !c.selected:
		c.match()
	}
}

// Answer returns the highlighted choice and whether anything is selected.
func (c *Confirm) Answer() (yes bool, selected bool) {
	return c.yes, c.selected
}

// Typed returns the text typed so far.
func (c *Confirm) Typed() string {
	return c.typed
}

func (c *Confirm) hint() string {
	if !c.cfg.CharPrompt {
		return ": "
	}
	first := func(s string) string {
		rs := []rune(s)
		return string(rs[0])
	}
	return " (" + first(c.cfg.YesText) + "/" + first(c.cfg.NoText) + ") "
}

// View renders the question, typed text and both choices.
func (c *Confirm) View() string {
	theme := c.cfg.Theme
	var b strings.Builder

	b.WriteString(theme.QuestionStyle.Render(c.cfg.Question) + c.hint() + c.typed + "\n")
	for _, yes := range []bool{true, false} {
		active := c.selected && c.yes == yes
		label := c.label(yes)
		if active {
			label = theme.HighlightStyle.Render(label)
		}
		b.WriteString(theme.CursorPrefix(active) + label + "\n")
	}

	if !c.cfg.HideHelp && c.done == Running {
		b.WriteString("\n" + ui.HelpLine(keys.ConfirmHelp{KeyMap: c.cfg.Keys}, c.width) + "\n")
	}
	return b.String()
}
