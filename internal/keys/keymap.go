package keys

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings every prompt dispatches on.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Confirm   key.Binding
	Escape    key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Tab       key.Binding
	Interrupt key.Binding
	Select    key.Binding // Tick in multi-select
	SelectAll key.Binding // Toggle all ticks in multi-select
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev page"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark all"),
		),
	}
}

// bindings maps the action names used in config files to the bindings.
func (k *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"up":         &k.Up,
		"down":       &k.Down,
		"left":       &k.Left,
		"right":      &k.Right,
		"home":       &k.Home,
		"end":        &k.End,
		"confirm":    &k.Confirm,
		"escape":     &k.Escape,
		"backspace":  &k.Backspace,
		"delete":     &k.Delete,
		"tab":        &k.Tab,
		"interrupt":  &k.Interrupt,
		"select":     &k.Select,
		"select_all": &k.SelectAll,
	}
}

// Actions returns the action names accepted by Override, sorted.
func Actions() []string {
	var k KeyMap
	names := make([]string, 0, 14)
	for name := range k.bindings() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override returns a copy of the key map where each named action is bound
// to the given keys instead. Help text is kept. Unknown actions are an error.
func (k KeyMap) Override(actions map[string][]string) (KeyMap, error) {
	out := k
	table := out.bindings()
	for name, ks := range actions {
		b, ok := table[name]
		if !ok {
			return k, fmt.Errorf("unknown key action %q", name)
		}
		if len(ks) == 0 {
			return k, fmt.Errorf("key action %q has no keys", name)
		}
		// Config files spell the space bar "space"; bindings match on " ".
		resolved := make([]string, len(ks))
		for i, s := range ks {
			resolved[i] = Parse(s).String()
		}
		b.SetKeys(resolved...)
	}
	return out, nil
}

// Bound returns the keys bound to each action, keyed by action name.
func (k KeyMap) Bound() map[string][]string {
	out := make(map[string][]string)
	for name, b := range k.bindings() {
		out[name] = b.Keys()
	}
	return out
}

// Matches reports whether the keypress triggers any of the bindings.
func Matches(k Key, bindings ...key.Binding) bool {
	return key.Matches(k, bindings...)
}

// SelectHelp is the footer key map of the single-select prompt.
type SelectHelp struct {
	KeyMap
	Paginated bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h SelectHelp) ShortHelp() []key.Binding {
	if h.Paginated {
		return []key.Binding{h.Up, h.Down, h.Left, h.Right, h.Confirm}
	}
	return []key.Binding{h.Up, h.Down, h.Confirm}
}

// FullHelp returns keybindings for the expanded help view
func (h SelectHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Left, h.Right},
		{h.Home, h.End, h.Confirm, h.Escape},
	}
}

// MultiSelectHelp is the footer key map of the multi-select prompt.
type MultiSelectHelp struct {
	KeyMap
	Paginated bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h MultiSelectHelp) ShortHelp() []key.Binding {
	if h.Paginated {
		return []key.Binding{h.Select, h.SelectAll, h.Left, h.Right, h.Confirm}
	}
	return []key.Binding{h.Select, h.SelectAll, h.Confirm}
}

// FullHelp returns keybindings for the expanded help view
func (h MultiSelectHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Left, h.Right},
		{h.Select, h.SelectAll, h.Confirm, h.Escape},
	}
}

// PromptHelp is the footer key map of the text prompt.
type PromptHelp struct {
	KeyMap
	Completion bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h PromptHelp) ShortHelp() []key.Binding {
	if h.Completion {
		return []key.Binding{h.Tab, h.Confirm}
	}
	return []key.Binding{h.Confirm}
}

// FullHelp returns keybindings for the expanded help view
func (h PromptHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Left, h.Right, h.Home, h.End},
		{h.Backspace, h.Delete, h.Tab, h.Confirm, h.Escape},
	}
}

// ConfirmHelp is the footer key map of the yes/no prompt.
type ConfirmHelp struct {
	KeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h ConfirmHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Confirm}
}

// FullHelp returns keybindings for the expanded help view
func (h ConfirmHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Tab, h.Confirm, h.Escape},
	}
}
