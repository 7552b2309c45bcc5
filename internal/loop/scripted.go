package loop

import (
	"errors"

	"github.com/muurk/tuiprompt/internal/keys"
)

// ErrScriptExhausted is returned when a scripted terminal runs out of keys
// before the prompt finishes.
var ErrScriptExhausted = errors.New("scripted terminal ran out of keys")

// Scripted is a Terminal that replays a fixed key sequence and records
// every frame. It drives prompts without a tty.
type Scripted struct {
	keys []keys.Key
	pos  int

	Frames        []string
	CursorVisible bool
	// CursorHidden counts how often the cursor was hidden.
	CursorHidden int
	Finalized    bool
	Kept         bool
}

// NewScripted creates a terminal that will deliver ks in order.
func NewScripted(ks ...keys.Key) *Scripted {
	return &Scripted{keys: ks, CursorVisible: true}
}

// NewScriptedFromString parses a comma separated script ("down,enter").
func NewScriptedFromString(script string) *Scripted {
	return NewScripted(keys.ParseSequence(script)...)
}

// ReadKey returns the next scripted key.
func (s *Scripted) ReadKey() (keys.Key, error) {
	if s.pos >= len(s.keys) {
		return keys.Key{}, ErrScriptExhausted
	}
	k := s.keys[s.pos]
	s.pos++
	return k, nil
}

// Render records the frame.
func (s *Scripted) Render(frame string) {
	s.Frames = append(s.Frames, frame)
}

// SetCursorVisible records cursor visibility.
func (s *Scripted) SetCursorVisible(visible bool) {
	if !visible {
		s.CursorHidden++
	}
	s.CursorVisible = visible
}

// Finalize records the end of the live region.
func (s *Scripted) Finalize(keep bool) {
	s.Finalized = true
	s.Kept = keep
}

// LastFrame returns the most recent frame, or "".
func (s *Scripted) LastFrame() string {
	if len(s.Frames) == 0 {
		return ""
	}
	return s.Frames[len(s.Frames)-1]
}

// Remaining returns how many keys have not been read yet.
func (s *Scripted) Remaining() int {
	return len(s.keys) - s.pos
}
