package keys

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Named identifies a non-printable key the prompts react to.
type Named int

const (
	NamedNone Named = iota // Printable key, no name
	Up
	Down
	Left
	Right
	Home
	End
	Enter
	Escape
	Backspace
	Delete
	Tab
	CtrlC
)

// keyNames use the same spelling as bubbletea's KeyMsg.String() so that
// bubbles/key bindings match both message types.
var keyNames = map[Named]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Home:      "home",
	End:       "end",
	Enter:     "enter",
	Escape:    "esc",
	Backspace: "backspace",
	Delete:    "delete",
	Tab:       "tab",
	CtrlC:     "ctrl+c",
}

// String returns the binding name of the key
func (n Named) String() string {
	if name, ok := keyNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Named(%d)", int(n))
}

// Key is a single keypress: either printable text or a named control key.
// The zero value is an empty printable key.
type Key struct {
	Text string
	Name Named
}

// Printable returns a key carrying literal text.
func Printable(text string) Key {
	return Key{Text: text}
}

// NamedKey returns a control key.
func NamedKey(n Named) Key {
	return Key{Name: n}
}

// IsPrintable reports whether the key carries text rather than a name.
func (k Key) IsPrintable() bool {
	return k.Name == NamedNone
}

// Is reports whether k is the named key n.
func (k Key) Is(n Named) bool {
	return k.Name == n
}

// String implements fmt.Stringer. Printable keys render as their text,
// named keys as their binding name ("up", "ctrl+c", ...).
func (k Key) String() string {
	if k.IsPrintable() {
		return k.Text
	}
	return k.Name.String()
}

// FromMsg classifies a bubbletea key message. ok is false for keys the
// prompts have no use for (function keys, alt combinations, other ctrl keys).
func FromMsg(msg tea.KeyMsg) (Key, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return NamedKey(Up), true
	case tea.KeyDown:
		return NamedKey(Down), true
	case tea.KeyLeft:
		return NamedKey(Left), true
	case tea.KeyRight:
		return NamedKey(Right), true
	case tea.KeyHome:
		return NamedKey(Home), true
	case tea.KeyEnd:
		return NamedKey(End), true
	case tea.KeyEnter:
		return NamedKey(Enter), true
	case tea.KeyEsc:
		return NamedKey(Escape), true
	case tea.KeyBackspace:
		return NamedKey(Backspace), true
	case tea.KeyDelete:
		return NamedKey(Delete), true
	case tea.KeyTab:
		return NamedKey(Tab), true
	case tea.KeyCtrlC:
		return NamedKey(CtrlC), true
	case tea.KeySpace:
		return Printable(" "), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return Key{}, false
		}
		return Printable(string(msg.Runes)), true
	}
	return Key{}, false
}

// Parse turns a binding name ("enter", "ctrl+c", "space") into a Key.
// Anything that is not a known name is treated as printable text.
func Parse(s string) Key {
	lower := strings.ToLower(s)
	switch lower {
	case "space":
		return Printable(" ")
	case "escape":
		return NamedKey(Escape)
	case "del":
		return NamedKey(Delete)
	}
	for n, name := range keyNames {
		if lower == name {
			return NamedKey(n)
		}
	}
	return Printable(s)
}

// ParseSequence splits a comma separated script ("4,2,enter") into keys.
// A literal comma is written as "comma".
func ParseSequence(script string) []Key {
	if script == "" {
		return nil
	}
	parts := strings.Split(script, ",")
	seq := make([]Key, 0, len(parts))
	for _, p := range parts {
		if strings.EqualFold(p, "comma") {
			seq = append(seq, Printable(","))
			continue
		}
		seq = append(seq, Parse(p))
	}
	return seq
}
