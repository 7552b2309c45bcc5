package loop

import (
	"fmt"

	"github.com/muurk/tuiprompt/internal/engine"
	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/logging"
)

// Engine is one interaction's state machine. Update returns an error only
// for failures that end the interaction (conversion or validation errors
// that are not shown inline).
type Engine interface {
	Update(k keys.Key) error
	View() string
	Done() engine.DoneReason
}

// Resizer is implemented by engines whose view depends on the terminal
// width.
type Resizer interface {
	SetWidth(width int)
}

// Terminal is the boundary to the keyboard and screen.
type Terminal interface {
	// ReadKey blocks until the next keypress.
	ReadKey() (keys.Key, error)
	// Render replaces the live region with frame.
	Render(frame string)
	SetCursorVisible(visible bool)
	// Finalize ends the live region. keep leaves the last frame on
	// screen, otherwise it is cleared.
	Finalize(keep bool)
}

// Options controls a single run.
type Options struct {
	// Name identifies the prompt in logs.
	Name string
	// Transient clears the prompt from the screen when it ends.
	Transient bool
	// Secure masks printable keys in logs.
	Secure bool
}

// Extract turns the finished engine into the caller's result.
type Extract[R any] func(reason engine.DoneReason) (R, error)

// Run drives e until it reaches a terminal state. The cursor is hidden while
// running and is shown again on every exit path, errors and panics
// included.
func Run[R any](t Terminal, e Engine, opts Options, extract Extract[R]) (R, error) {
	var zero R

	t.SetCursorVisible(false)
	defer t.SetCursorVisible(true)

	keep := false
	defer func() { t.Finalize(keep) }()

	for {
		t.Render(e.View())

		k, err := t.ReadKey()
		if err != nil {
			logging.LogOutcome(opts.Name, engine.Running.String(), err)
			return zero, fmt.Errorf("read key: %w", err)
		}
		logging.LogKey(opts.Name, k.String(), k.IsPrintable(), opts.Secure)

		if err := e.Update(k); err != nil {
			logging.LogOutcome(opts.Name, engine.Running.String(), err)
			return zero, err
		}

		if reason := e.Done(); reason != engine.Running {
			logging.LogOutcome(opts.Name, reason.String(), nil)
			if !opts.Transient {
				t.Render(e.View())
				keep = true
			}
			return extract(reason)
		}
	}
}
