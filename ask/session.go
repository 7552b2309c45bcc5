package ask

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/muurk/tuiprompt/internal/engine"
	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/loop"
	"github.com/muurk/tuiprompt/internal/ui"
)

// Settings controls every prompt run through a Session.
type Settings struct {
	// RaiseOnInterrupt makes ctrl+c return ErrInterrupted instead of the
	// neutral value.
	RaiseOnInterrupt bool
	// RaiseOnEscape makes esc return an *AbortError instead of the
	// neutral value.
	RaiseOnEscape bool
	// Transient clears a prompt from the screen once it ends. When false
	// the final frame stays visible.
	Transient bool
	Keys      KeyMap
	Theme     Theme
}

// DefaultSettings returns the stock settings: neutral values on escape
// and interrupt, transient prompts, default keys and theme.
func DefaultSettings() Settings {
	return Settings{
		Transient: true,
		Keys:      keys.DefaultKeyMap(),
		Theme:     ui.DefaultTheme(),
	}
}

func (s Settings) policy() engine.Policy {
	return engine.Policy{
		RaiseOnInterrupt: s.RaiseOnInterrupt,
		RaiseOnEscape:    s.RaiseOnEscape,
	}
}

// normalized fills the parts a zero Settings leaves unusable: a key map
// without bindings and empty glyphs.
func (s Settings) normalized() Settings {
	if len(s.Keys.Confirm.Keys()) == 0 {
		s.Keys = keys.DefaultKeyMap()
	}
	if s.Theme.Cursor == "" {
		s.Theme.Cursor = ui.DefaultCursor
	}
	if s.Theme.Tick == "" {
		s.Theme.Tick = ui.DefaultTick
	}
	return s
}

// theme returns the per-call override, with empty glyphs taken from the
// session theme, or the session theme when there is no override.
func (s Settings) theme(override *Theme) Theme {
	if override == nil {
		return s.Theme
	}
	t := *override
	if t.Cursor == "" {
		t.Cursor = s.Theme.Cursor
	}
	if t.Tick == "" {
		t.Tick = s.Theme.Tick
	}
	return t
}

// Session carries Settings and the terminal prompts run against. It is
// safe for concurrent use, though prompts themselves own the terminal
// while they run.
type Session struct {
	mu       sync.RWMutex
	settings Settings

	terminal Terminal
	input    *os.File
	output   io.Writer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTerminal runs prompts against t instead of the process tty.
func WithTerminal(t Terminal) SessionOption {
	return func(s *Session) {
		s.terminal = t
	}
}

// WithInput reads keys from f. Defaults to os.Stdin.
func WithInput(f *os.File) SessionOption {
	return func(s *Session) {
		s.input = f
	}
}

// WithOutput draws prompts on w. Defaults to os.Stderr so that standard
// output stays free for results.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		s.output = w
	}
}

// NewSession creates a session.
func NewSession(settings Settings, opts ...SessionOption) *Session {
	s := &Session{
		settings: settings,
		input:    os.Stdin,
		output:   os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings returns a copy of the current settings.
func (s *Session) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.normalized()
}

// SetSettings replaces the settings. Prompts already running pick up the
// raise flags when they end.
func (s *Session) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Update changes the settings in place.
func (s *Session) Update(fn func(*Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
}

var defaultSession atomic.Pointer[Session]

func init() {
	ResetDefault()
}

// Default returns the process-wide session used when an options struct
// leaves Session nil.
func Default() *Session {
	return defaultSession.Load()
}

// SetDefault replaces the process-wide session. Nil restores a fresh
// default.
func SetDefault(s *Session) {
	if s == nil {
		ResetDefault()
		return
	}
	defaultSession.Store(s)
}

// ResetDefault installs a new default session with DefaultSettings.
func ResetDefault() {
	defaultSession.Store(NewSession(DefaultSettings()))
}

func sessionOrDefault(s *Session) *Session {
	if s != nil {
		return s
	}
	return Default()
}

// ErrScriptExhausted is returned when a scripted terminal runs out of keys.
var ErrScriptExhausted = loop.ErrScriptExhausted
