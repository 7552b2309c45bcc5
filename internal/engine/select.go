package engine

import (
	"fmt"
	"strings"

	"github.com/muurk/tuiprompt/internal/keys"
	"github.com/muurk/tuiprompt/internal/ui"
)

// SelectConfig configures a single-select interaction.
type SelectConfig[T any] struct {
	Options []T
	// Display renders an option. Defaults to fmt.Sprint.
	Display     func(T) string
	CursorIndex int
	Paginated   bool
	PageSize    int
	Keys        keys.KeyMap
	Theme       ui.Theme
	HideHelp    bool
}

// Select picks one option from a list.
type Select[T any] struct {
	status
	layout
	cfg   SelectConfig[T]
	pager Pager
}

// NewSelect creates a single-select engine. It returns ErrEmptyOptions
// when there is nothing to choose from.
func NewSelect[T any](cfg SelectConfig[T]) (*Select[T], error) {
	if len(cfg.Options) == 0 {
		return nil, ErrEmptyOptions
	}
	if cfg.Display == nil {
		cfg.Display = display[T]
	}
	return &Select[T]{
		cfg:   cfg,
		pager: NewPager(len(cfg.Options), cfg.CursorIndex, cfg.PageSize, cfg.Paginated),
	}, nil
}

// Update handles one keypress.
func (s *Select[T]) Update(k keys.Key) error {
	if s.done != Running {
		return nil
	}
	km := s.cfg.Keys
	switch {
	case keys.Matches(k, km.Interrupt):
		s.finish(Interrupted, k)
	case keys.Matches(k, km.Escape):
		s.finish(Escaped, k)
	case keys.Matches(k, km.Confirm):
		s.finish(Confirmed, k)
	default:
		s.pager.Navigate(k, km)
	}
	return nil
}

// Index returns the row under the cursor.
func (s *Select[T]) Index() int {
	return s.pager.Index
}

// Page returns the current page and the page count.
func (s *Select[T]) Page() (int, int) {
	return s.pager.Page(), s.pager.Pages()
}

// Selected returns the option under the cursor.
func (s *Select[T]) Selected() T {
	return s.cfg.Options[s.pager.Index]
}

// View renders the visible window of options.
func (s *Select[T]) View() string {
	theme := s.cfg.Theme
	var b strings.Builder

	from, to := s.pager.Window()
	for i := from; i < to; i++ {
		active := i == s.pager.Index
		label := s.cfg.Display(s.cfg.Options[i])
		if active {
			label = theme.HighlightStyle.Render(label)
		}
		b.WriteString(theme.CursorPrefix(active) + label + "\n")
	}

	if s.cfg.Paginated {
		b.WriteString(theme.MutedStyle.Render(pageLabel(s.pager)) + "\n")
	}

	if !s.cfg.HideHelp && s.done == Running {
		b.WriteString("\n" + ui.HelpLine(keys.SelectHelp{KeyMap: s.cfg.Keys, Paginated: s.cfg.Paginated}, s.width) + "\n")
	}
	return b.String()
}

func pageLabel(p Pager) string {
	return fmt.Sprintf("Page %d/%d", p.Page(), p.Pages())
}

func display[T any](v T) string {
	return fmt.Sprint(v)
}
