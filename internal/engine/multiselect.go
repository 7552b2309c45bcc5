package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/ui"
)

// MultiSelectConfig configures a multi-select interaction.
type MultiSelectConfig[T any] struct {
	Options []T
	Display func(T) string
	// Ticked lists pre-ticked rows. Out-of-range and duplicate indices are
	// ignored. Pre-ticking may exceed MaxCount.
	Ticked      []int
	CursorIndex int
	// MinCount is the fewest ticks accepted on confirm.
	MinCount int
	// MaxCount caps interactive ticking. Zero or less means no cap.
	MaxCount  int
	Paginated bool
	PageSize  int
	Keys      keys.KeyMap
	Theme     ui.Theme
	HideHelp  bool
}

// MultiSelect ticks any number of options from a list.
type MultiSelect[T any] struct {
	status
	layout
	cfg    MultiSelectConfig[T]
	pager  Pager
	ticked map[int]bool
	err    string
	// capHit marks err as a cap message rather than a failed confirm.
	capHit bool
}

// NewMultiSelect creates a multi-select engine. It returns ErrEmptyOptions
// when there is nothing to choose from.
func NewMultiSelect[T any](cfg MultiSelectConfig[T]) (*MultiSelect[T], error) {
	if len(cfg.Options) == 0 {
		return nil, ErrEmptyOptions
	}
	if cfg.Display == nil {
		cfg.Display = display[T]
	}
	m := &MultiSelect[T]{
		cfg:    cfg,
		pager:  NewPager(len(cfg.Options), cfg.CursorIndex, cfg.PageSize, cfg.Paginated),
		ticked: make(map[int]bool, len(cfg.Ticked)),
	}
	for _, i := range cfg.Ticked {
		if i >= 0 && i < len(cfg.Options) {
			m.ticked[i] = true
		}
	}
	return m, nil
}

func (m *MultiSelect[T]) capped() bool {
	return m.cfg.MaxCount > 0
}

// Update handles one keypress. The error message only lives until the
// next keypress.
func (m *MultiSelect[T]) Update(k keys.Key) error {
	if m.done != Running {
		return nil
	}
	m.err = ""
	m.capHit = false

	km := m.cfg.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		m.finish(Interrupted, k)
	case keys.Matches(k, km.Escape):
		m.finish(Escaped, k)
	case keys.Matches(k, km.Confirm):
		if len(m.ticked) < m.cfg.MinCount {
			m.err = fmt.Sprintf("Must select at least %d options", m.cfg.MinCount)
			return nil
		}
		m.finish(Confirmed, k)
	case keys.Matches(k, km.SelectAll):
		m.toggleAll()
	case keys.Matches(k, km.Select):
		m.toggle(m.pager.Index)
	default:
		m.pager.Navigate(k, km)
	}
	return nil
}

func (m *MultiSelect[T]) toggle(i int) {
	if m.ticked[i] {
		delete(m.ticked, i)
		return
	}
	if m.capped() && len(m.ticked)+1 > m.cfg.MaxCount {
		m.capReached()
		return
	}
	m.ticked[i] = true
}

// toggleAll clears every tick when the reachable maximum is already
// ticked. Otherwise it ticks all rows, or the first MaxCount rows when
// capped below the option count.
func (m *MultiSelect[T]) toggleAll() {
	n := len(m.cfg.Options)
	target := n
	if m.capped() && m.cfg.MaxCount < n {
		target = m.cfg.MaxCount
	}

	if len(m.ticked) == target {
		clear(m.ticked)
		return
	}

	clear(m.ticked)
	for i := 0; i < target; i++ {
		m.ticked[i] = true
	}
	if target < n {
		m.capReached()
	}
}

func (m *MultiSelect[T]) capReached() {
	m.err = fmt.Sprintf("Must select at most %d options", m.cfg.MaxCount)
	m.capHit = true
}

// Ticked returns the ticked rows in ascending order.
func (m *MultiSelect[T]) Ticked() []int {
	out := make([]int, 0, len(m.ticked))
	for i := range m.ticked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Values returns the ticked options in ascending row order.
func (m *MultiSelect[T]) Values() []T {
	idx := m.Ticked()
	out := make([]T, len(idx))
	for j, i := range idx {
		out[j] = m.cfg.Options[i]
	}
	return out
}

// Index returns the row under the cursor.
func (m *MultiSelect[T]) Index() int {
	return m.pager.Index
}

// Err returns the message shown under the list, if any.
func (m *MultiSelect[T]) Err() string {
	return m.err
}

// CapReached reports whether the current message is about MaxCount. It is
// drawn as a warning instead of an error.
func (m *MultiSelect[T]) CapReached() bool {
	return m.capHit
}

// View renders the visible window with checkboxes.
func (m *MultiSelect[T]) View() string {
	theme := m.cfg.Theme
	var b strings.Builder

	from, to := m.pager.Window()
	for i := from; i < to; i++ {
		active := i == m.pager.Index
		label := m.cfg.Display(m.cfg.Options[i])
		if active {
			label = theme.HighlightStyle.Render(label)
		}
		b.WriteString(theme.CursorPrefix(active) + theme.TickBox(m.ticked[i]) + " " + label + "\n")
	}

	if m.cfg.Paginated {
		b.WriteString(theme.MutedStyle.Render(pageLabel(m.pager)) + "\n")
	}
	if m.err != "" {
		style := theme.ErrorStyle
		if m.capHit {
			style = theme.WarningStyle
		}
		b.WriteString(style.Render("Error: "+m.err) + "\n")
	}

	if !m.cfg.HideHelp && m.done == Running {
		b.WriteString("\n" + ui.HelpLine(keys.MultiSelectHelp{KeyMap: m.cfg.Keys, Paginated: m.cfg.Paginated}, m.width) + "\n")
	}
	return b.String()
}
