package ask

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muurk/tuiprompt/internal/engine"
	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/loop"
	"github.com/muurk/tuiprompt/internal/ui"
)

// exiter is an engine that remembers the key that ended it.
type exiter interface {
	loop.Engine
	ExitKey() keys.Key
}

type result[R any] struct {
	value R
	ok    bool
}

// run drives e and turns its DoneReason into (value, ok, err). The raise
// flags are read from the session when the prompt ends.
func run[R any](sess *Session, name string, e exiter, secure bool, value func() R) (R, bool, error) {
	settings := sess.Settings()
	opts := loop.Options{
		Name:      name,
		Transient: settings.Transient,
		Secure:    secure,
	}

	extract := func(reason engine.DoneReason) (result[R], error) {
		if err := engine.Resolve(reason, e.ExitKey(), sess.Settings().policy()); err != nil {
			return result[R]{}, err
		}
		if reason != engine.Confirmed {
			return result[R]{}, nil
		}
		return result[R]{value: value(), ok: true}, nil
	}

	r, err := drive(sess, e, opts, extract)
	return r.value, r.ok, err
}

func drive[R any](sess *Session, e loop.Engine, opts loop.Options, extract loop.Extract[R]) (R, error) {
	if sess.terminal != nil {
		return loop.Run(sess.terminal, e, opts, extract)
	}
	if !ui.IsTerminal(sess.input) {
		var zero R
		return zero, ErrNotTerminal
	}
	if r, ok := e.(loop.Resizer); ok {
		r.SetWidth(ui.GetTerminalWidth(sess.output))
	}
	return loop.RunProgram(e, opts, extract,
		tea.WithInput(sess.input),
		tea.WithOutput(sess.output),
	)
}
