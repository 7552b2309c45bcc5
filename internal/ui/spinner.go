package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoFrames is returned when a spinner is built without animation frames.
var ErrNoFrames = errors.New("spinner frames cannot be empty")

// Spinner presets, keyed by the names accepted on the command line.
var spinnerPresets = map[string]spinner.Spinner{
	"line":      spinner.Line,
	"dots":      spinner.Dot,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"monkey":    spinner.Monkey,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
	"ellipsis":  spinner.Ellipsis,
	"arc": {
		Frames: []string{"◜", "◠", "◝", "◞", "◡", "◟"},
		FPS:    time.Second / 10,
	},
}

// SpinnerPreset returns a named animation.
func SpinnerPreset(name string) (spinner.Spinner, error) {
	s, ok := spinnerPresets[strings.ToLower(name)]
	if !ok {
		return spinner.Spinner{}, fmt.Errorf("unknown spinner %q (available: %s)", name, strings.Join(SpinnerPresetNames(), ", "))
	}
	return s, nil
}

// SpinnerPresetNames lists the preset names, sorted.
func SpinnerPresetNames() []string {
	names := make([]string, 0, len(spinnerPresets))
	for name := range spinnerPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// spinnerModel is the Bubble Tea model behind Spinner.
type spinnerModel struct {
	spin      spinner.Model
	text      string
	transient bool
	stopped   bool
}

type stopSpinnerMsg struct{}

// Init implements tea.Model
func (m spinnerModel) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case stopSpinnerMsg:
		m.stopped = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m spinnerModel) View() string {
	if m.stopped && m.transient {
		return ""
	}
	return m.spin.View() + " " + m.text
}

// Spinner shows a cycling animation next to a line of text until stopped.
// It does not read keyboard input.
type Spinner struct {
	model   spinnerModel
	opts    []tea.ProgramOption
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewSpinner creates a spinner. Extra program options are passed to
// Bubble Tea (tests use tea.WithOutput).
func NewSpinner(anim spinner.Spinner, text string, transient bool, opts ...tea.ProgramOption) (*Spinner, error) {
	if len(anim.Frames) == 0 {
		return nil, ErrNoFrames
	}
	if anim.FPS <= 0 {
		anim.FPS = time.Second / 4
	}
	model := spinnerModel{
		spin: spinner.New(
			spinner.WithSpinner(anim),
			spinner.WithStyle(DefaultTheme().CursorStyle),
		),
		text:      text,
		transient: transient,
	}
	return &Spinner{
		model: model,
		opts:  append([]tea.ProgramOption{tea.WithInput(nil)}, opts...),
	}, nil
}

// Start begins the animation. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil {
		return
	}
	s.program = tea.NewProgram(s.model, s.opts...)
	s.done = make(chan struct{})
	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(s.program, s.done)
}

// Stop ends the animation and waits until the terminal is restored.
func (s *Spinner) Stop() {
	s.mu.Lock()
	p, done := s.program, s.done
	s.program, s.done = nil, nil
	s.mu.Unlock()
	if p == nil {
		return
	}
	p.Send(stopSpinnerMsg{})
	<-done
}

// Running reports whether the spinner has been started and not stopped.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program != nil
}
