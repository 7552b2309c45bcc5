package loop

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muurk/tuiprompt/internal/engine"
	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/logging"
)

// ErrInputClosed is returned when the program stops before the prompt
// reached a terminal state, for example on end of input.
var ErrInputClosed = errors.New("input closed before the prompt finished")

// promptModel adapts an Engine to a Bubble Tea model.
type promptModel struct {
	engine   Engine
	opts     Options
	err      error
	quitting bool
}

func newPromptModel(e Engine, opts Options) promptModel {
	return promptModel{engine: e, opts: opts}
}

// Init implements tea.Model
func (m promptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if r, ok := m.engine.(Resizer); ok {
			r.SetWidth(msg.Width)
		}
	case tea.KeyMsg:
		k, ok := keys.FromMsg(msg)
		if !ok {
			return m, nil
		}
		logging.LogKey(m.opts.Name, k.String(), k.IsPrintable(), m.opts.Secure)

		if err := m.engine.Update(k); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		if m.engine.Done() != engine.Running {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. A transient prompt renders nothing once it
// is done, which clears it from the screen.
func (m promptModel) View() string {
	if m.quitting && (m.opts.Transient || m.err != nil) {
		return ""
	}
	return m.engine.View()
}

// RunProgram drives e with a Bubble Tea program. Bubble Tea hides the
// cursor for the lifetime of the program and restores the terminal on
// every exit path.
func RunProgram[R any](e Engine, opts Options, extract Extract[R], progOpts ...tea.ProgramOption) (R, error) {
	var zero R

	p := tea.NewProgram(newPromptModel(e, opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		logging.LogOutcome(opts.Name, engine.Running.String(), err)
		return zero, fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return zero, fmt.Errorf("run prompt: unexpected model %T", final)
	}
	if m.err != nil {
		logging.LogOutcome(opts.Name, engine.Running.String(), m.err)
		return zero, m.err
	}

	reason := e.Done()
	if reason == engine.Running {
		logging.LogOutcome(opts.Name, reason.String(), ErrInputClosed)
		return zero, ErrInputClosed
	}
	logging.LogOutcome(opts.Name, reason.String(), nil)
	return extract(reason)
}
