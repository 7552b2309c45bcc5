package engine

import (
	"strings"

	"github.com/muurk/tuiprompt/internal/convert"
	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/ui"
)

// TextConfig configures a free-text prompt.
type TextConfig[T any] struct {
	Label   string
	Convert convert.Converter[T]
	// Validate is applied to the converted value. Nil accepts everything.
	Validate func(T) bool
	// Secure echoes every rune as "*" and withholds input from errors.
	Secure       bool
	InitialValue string
	// Completion returns candidates for the current buffer.
	Completion func(string) []string
	// InlineConversionErrors shows conversion failures under the input
	// and keeps the prompt open. When false the failure is returned.
	InlineConversionErrors bool
	InlineValidationErrors bool
	Keys                   keys.KeyMap
	Theme                  ui.Theme
	HideHelp               bool
}

// completionState tracks Tab cycling. active is -1 outside a cycle.
type completionState struct {
	options []string
	active  int
}

// Text edits a line of text and converts it on confirm.
type Text[T any] struct {
	status
	layout
	cfg        TextConfig[T]
	buf        []rune
	cursor     int
	completion completionState
	err        string
	value      T
}

// NewText creates a text prompt engine with the cursor after the initial
// value.
func NewText[T any](cfg TextConfig[T]) *Text[T] {
	if !cfg.Convert.Valid() {
		if c, ok := any(convert.String()).(convert.Converter[T]); ok {
			cfg.Convert = c
		}
	}
	buf := []rune(cfg.InitialValue)
	return &Text[T]{
		cfg:        cfg,
		buf:        buf,
		cursor:     len(buf),
		completion: completionState{active: -1},
	}
}

// Update handles one keypress. Conversion and validation failures are
// returned when they are not shown inline.
func (t *Text[T]) Update(k keys.Key) error {
	if t.done != Running {
		return nil
	}
	t.err = ""

	km := t.cfg.Keys
	if !keys.Matches(k, km.Tab) {
		t.completion = completionState{active: -1}
	}

	if k.IsPrintable() && !keys.Matches(k, km.Confirm, km.Escape, km.Interrupt) {
		t.insert([]rune(k.Text))
		return nil
	}

	switch {
	case keys.Matches(k, km.Interrupt):
		t.finish(Interrupted, k)
	case keys.Matches(k, km.Escape):
		t.finish(Escaped, k)
	case keys.Matches(k, km.Confirm):
		return t.submit(k)
	case keys.Matches(k, km.Tab):
		t.complete()
	case keys.Matches(k, km.Backspace):
		if t.cursor > 0 {
			t.buf = append(t.buf[:t.cursor-1], t.buf[t.cursor:]...)
			t.cursor--
		}
	case keys.Matches(k, km.Delete):
		if t.cursor < len(t.buf) {
			t.buf = append(t.buf[:t.cursor], t.buf[t.cursor+1:]...)
		}
	case keys.Matches(k, km.Left):
		if t.cursor > 0 {
			t.cursor--
		}
	case keys.Matches(k, km.Right):
		if t.cursor < len(t.buf) {
			t.cursor++
		}
	case keys.Matches(k, km.Home):
		t.cursor = 0
	case keys.Matches(k, km.End):
		t.cursor = len(t.buf)
	case keys.Matches(k, km.Up, km.Down):
		// Single-line input has no vertical movement.
	}
	return nil
}

func (t *Text[T]) insert(rs []rune) {
	out := make([]rune, 0, len(t.buf)+len(rs))
	out = append(out, t.buf[:t.cursor]...)
	out = append(out, rs...)
	out = append(out, t.buf[t.cursor:]...)
	t.buf = out
	t.cursor += len(rs)
}

func (t *Text[T]) setBuffer(s string) {
	t.buf = []rune(s)
	t.cursor = len(t.buf)
}

// complete starts a completion cycle from the current buffer, or advances
// the running one.
func (t *Text[T]) complete() {
	if t.cfg.Completion == nil {
		return
	}
	c := &t.completion
	if c.active < 0 {
		c.options = t.cfg.Completion(string(t.buf))
		if len(c.options) == 0 {
			return
		}
		c.active = 0
	} else {
		c.active = (c.active + 1) % len(c.options)
	}
	t.setBuffer(c.options[c.active])
}

func (t *Text[T]) submit(k keys.Key) error {
	input := string(t.buf)

	v, err := t.cfg.Convert.Convert(input)
	if err != nil {
		cerr := &ConversionError{
			Input:  input,
			Target: t.cfg.Convert.Name(),
			Secure: t.cfg.Secure,
			Err:    err,
		}
		if t.cfg.InlineConversionErrors {
			t.err = cerr.Error()
			return nil
		}
		return cerr
	}

	if t.cfg.Validate != nil && !t.cfg.Validate(v) {
		verr := &ValidationError{Input: input, Secure: t.cfg.Secure}
		if t.cfg.InlineValidationErrors {
			t.err = verr.Error()
			return nil
		}
		return verr
	}

	t.value = v
	t.finish(Confirmed, k)
	return nil
}

// Value returns the converted value. Only meaningful once Confirmed.
func (t *Text[T]) Value() T {
	return t.value
}

// Buffer returns the current input text.
func (t *Text[T]) Buffer() string {
	return string(t.buf)
}

// Cursor returns the caret position in runes.
func (t *Text[T]) Cursor() int {
	return t.cursor
}

// Err returns the inline error message, if any.
func (t *Text[T]) Err() string {
	return t.err
}

func (t *Text[T]) echo() []rune {
	if !t.cfg.Secure {
		return t.buf
	}
	return []rune(strings.Repeat(ui.SecureEcho, len(t.buf)))
}

// View renders the label, the input with its caret, completion candidates
// and the inline error.
func (t *Text[T]) View() string {
	theme := t.cfg.Theme
	var b strings.Builder

	b.WriteString(theme.QuestionStyle.Render(t.cfg.Label) + "\n")

	shown := t.echo()
	b.WriteString(theme.CursorStyle.Render(theme.Cursor) + " ")
	b.WriteString(string(shown[:t.cursor]))
	if t.done == Running {
		caret := " "
		if t.cursor < len(shown) {
			caret = string(shown[t.cursor])
		}
		b.WriteString(theme.CaretStyle.Render(caret))
		if t.cursor < len(shown) {
			b.WriteString(string(shown[t.cursor+1:]))
		}
	} else {
		b.WriteString(string(shown[t.cursor:]))
	}
	b.WriteString("\n")

	if t.done == Running && t.cfg.Completion != nil && !t.cfg.Secure {
		t.writeCandidates(&b)
	}

	if t.err != "" {
		b.WriteString(theme.ErrorStyle.Render("Error: "+t.err) + "\n")
	}

	if !t.cfg.HideHelp && t.done == Running {
		b.WriteString("\n" + ui.HelpLine(keys.PromptHelp{KeyMap: t.cfg.Keys, Completion: t.cfg.Completion != nil}, t.width) + "\n")
	}
	return b.String()
}

func (t *Text[T]) writeCandidates(b *strings.Builder) {
	theme := t.cfg.Theme
	options := t.completion.options
	active := t.completion.active
	if active < 0 {
		options = t.cfg.Completion(string(t.buf))
	}
	if len(options) == 0 {
		return
	}

	parts := make([]string, len(options))
	for i, o := range options {
		if i == active {
			parts[i] = theme.HighlightStyle.Render(o)
		} else {
			parts[i] = theme.MutedStyle.Render(o)
		}
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n")
}
