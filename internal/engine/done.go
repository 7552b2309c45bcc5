package engine

import (
	"fmt"

	"github.com/muurk/tuiprompt/internal/keys"
)

// DoneReason tells why an interaction ended.
type DoneReason int

const (
	Running     DoneReason = iota // Still waiting for input
	Confirmed                     // User confirmed a value
	Escaped                       // User pressed the escape binding
	Interrupted                   // User pressed the interrupt binding
)

// String returns a human-readable name for the reason
func (d DoneReason) String() string {
	switch d {
	case Running:
		return "running"
	case Confirmed:
		return "confirmed"
	case Escaped:
		return "escaped"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("DoneReason(%d)", int(d))
	}
}

// Policy decides whether escape and interrupt are errors.
type Policy struct {
	RaiseOnInterrupt bool
	RaiseOnEscape    bool
}

// Resolve maps a finished interaction to an error, or nil when the caller
// should return either the confirmed value or the neutral value.
// exitKey is the keypress that ended the interaction.
func Resolve(reason DoneReason, exitKey keys.Key, p Policy) error {
	switch reason {
	case Escaped:
		if p.RaiseOnEscape {
			return &AbortError{Key: exitKey}
		}
	case Interrupted:
		if p.RaiseOnInterrupt {
			return ErrInterrupted
		}
	}
	return nil
}

// status is embedded by every engine.
type status struct {
	done    DoneReason
	exitKey keys.Key
}

// Done returns the terminal reason, or Running.
func (s *status) Done() DoneReason {
	return s.done
}

// ExitKey returns the key that ended the interaction.
func (s *status) ExitKey() keys.Key {
	return s.exitKey
}

func (s *status) finish(reason DoneReason, k keys.Key) {
	s.done = reason
	s.exitKey = k
}
