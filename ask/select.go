package ask

import (
	"errors"

	"github.com/muurk/tuiprompt/internal/engine"
)

// SelectOptions configures Select and SelectIndex.
type SelectOptions[T any] struct {
	Session *Session
	// Display renders an option. Defaults to fmt.Sprint.
	Display func(T) string
	// CursorIndex is the row highlighted first.
	CursorIndex int
	Paginated   bool
	// PageSize defaults to 5.
	PageSize int
	// Strict turns an empty option list into ErrEmptyOptions instead of
	// an immediate neutral result.
	Strict   bool
	HideHelp bool
	// Theme replaces the session theme (cursor glyph and styles) for this
	// call.
	Theme *Theme
}

// Select asks the user to pick one option. ok is false when there was
// nothing to pick or the user escaped or interrupted without the matching
// raise flag.
func Select[T any](options []T, opts SelectOptions[T]) (value T, ok bool, err error) {
	s, err := newSelect(options, opts)
	if s == nil || err != nil {
		return value, false, err
	}
	return run(sessionOrDefault(opts.Session), "select", s, false, s.Selected)
}

// SelectIndex is Select returning the index of the picked option.
func SelectIndex[T any](options []T, opts SelectOptions[T]) (index int, ok bool, err error) {
	s, err := newSelect(options, opts)
	if s == nil || err != nil {
		return -1, false, err
	}
	index, ok, err = run(sessionOrDefault(opts.Session), "select", s, false, s.Index)
	if !ok {
		index = -1
	}
	return index, ok, err
}

// newSelect returns a nil engine and nil error for a lenient empty list.
func newSelect[T any](options []T, opts SelectOptions[T]) (*engine.Select[T], error) {
	settings := sessionOrDefault(opts.Session).Settings()
	s, err := engine.NewSelect(engine.SelectConfig[T]{
		Options:     options,
		Display:     opts.Display,
		CursorIndex: opts.CursorIndex,
		Paginated:   opts.Paginated,
		PageSize:    opts.PageSize,
		Keys:        settings.Keys,
		Theme:       settings.theme(opts.Theme),
		HideHelp:    opts.HideHelp,
	})
	if errors.Is(err, engine.ErrEmptyOptions) && !opts.Strict {
		return nil, nil
	}
	return s, err
}

// MultiSelectOptions configures SelectMultiple and SelectMultipleIndices.
type MultiSelectOptions[T any] struct {
	Session *Session
	Display func(T) string
	// Ticked lists rows ticked before the first keypress. They may exceed
	// MaxCount.
	Ticked      []int
	CursorIndex int
	// MinCount is the fewest ticks accepted on confirm.
	MinCount int
	// MaxCount caps interactive ticking. Zero means no cap.
	MaxCount  int
	Paginated bool
	PageSize  int
	Strict    bool
	HideHelp  bool
	// Theme replaces the session theme (cursor, tick glyph and styles) for
	// this call.
	Theme *Theme
}

// SelectMultiple asks the user to tick any number of options. The result
// is in option order, and empty when the user escaped or interrupted
// without the matching raise flag.
func SelectMultiple[T any](options []T, opts MultiSelectOptions[T]) ([]T, error) {
	m, err := newMultiSelect(options, opts)
	if m == nil || err != nil {
		return []T{}, err
	}
	values, ok, err := run(sessionOrDefault(opts.Session), "select_multiple", m, false, m.Values)
	if !ok {
		return []T{}, err
	}
	return values, nil
}

// SelectMultipleIndices is SelectMultiple returning ascending indices.
func SelectMultipleIndices[T any](options []T, opts MultiSelectOptions[T]) ([]int, error) {
	m, err := newMultiSelect(options, opts)
	if m == nil || err != nil {
		return []int{}, err
	}
	indices, ok, err := run(sessionOrDefault(opts.Session), "select_multiple", m, false, m.Ticked)
	if !ok {
		return []int{}, err
	}
	return indices, nil
}

func newMultiSelect[T any](options []T, opts MultiSelectOptions[T]) (*engine.MultiSelect[T], error) {
	settings := sessionOrDefault(opts.Session).Settings()
	m, err := engine.NewMultiSelect(engine.MultiSelectConfig[T]{
		Options:     options,
		Display:     opts.Display,
		Ticked:      opts.Ticked,
		CursorIndex: opts.CursorIndex,
		MinCount:    opts.MinCount,
		MaxCount:    opts.MaxCount,
		Paginated:   opts.Paginated,
		PageSize:    opts.PageSize,
		Keys:        settings.Keys,
		Theme:       settings.theme(opts.Theme),
		HideHelp:    opts.HideHelp,
	})
	if errors.Is(err, engine.ErrEmptyOptions) && !opts.Strict {
		return nil, nil
	}
	return m, err
}
