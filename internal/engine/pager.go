package engine

import (
	"github.com/muurk/tuiprompt/internal/keys"
)

// DefaultPageSize is used when a non-positive page size is given.
const DefaultPageSize = 5

// Pager is the cursor and pagination primitive shared by the select
// engines. The current page is always derived from Index, never stored,
// so the visible window follows the cursor.
type Pager struct {
	Index     int
	Count     int
	PageSize  int
	Paginated bool
}

// NewPager creates a pager over count rows. The starting index is clamped
// into range.
func NewPager(count, index, pageSize int, paginated bool) Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if index < 0 {
		index = 0
	}
	if count > 0 && index >= count {
		index = count - 1
	}
	return Pager{
		Index:     index,
		Count:     count,
		PageSize:  pageSize,
		Paginated: paginated,
	}
}

// Page returns the 1-based page holding the cursor.
func (p Pager) Page() int {
	return p.Index/p.PageSize + 1
}

// Pages returns the number of pages, ceil(Count / PageSize).
func (p Pager) Pages() int {
	return (p.Count + p.PageSize - 1) / p.PageSize
}

// Window returns the half-open row range currently shown. Without
// pagination every row is shown.
func (p Pager) Window() (from, to int) {
	if !p.Paginated {
		return 0, p.Count
	}
	from = (p.Page() - 1) * p.PageSize
	to = from + p.PageSize
	if to > p.Count {
		to = p.Count
	}
	return from, to
}

// Up moves the cursor one row up, wrapping from the first row to the last.
// On the first row of a page this lands on the previous page (or the last
// page from page 1) because the page follows Index.
func (p *Pager) Up() {
	if p.Count == 0 {
		return
	}
	p.Index = (p.Index - 1 + p.Count) % p.Count
}

// Down moves the cursor one row down, wrapping from the last row to the first.
func (p *Pager) Down() {
	if p.Count == 0 {
		return
	}
	p.Index = (p.Index + 1) % p.Count
}

// PrevPage jumps to the first row of the previous page, wrapping from
// page 1 to the last page. No-op without pagination.
func (p *Pager) PrevPage() {
	if !p.Paginated || p.Count == 0 {
		return
	}
	page := p.Page() - 1
	if page < 1 {
		page = p.Pages()
	}
	p.Index = (page - 1) * p.PageSize
}

// NextPage jumps to the first row of the next page, wrapping from the last
// page to page 1. No-op without pagination.
func (p *Pager) NextPage() {
	if !p.Paginated || p.Count == 0 {
		return
	}
	page := p.Page() + 1
	if page > p.Pages() {
		page = 1
	}
	p.Index = (page - 1) * p.PageSize
}

// First moves to row 0.
func (p *Pager) First() {
	p.Index = 0
}

// Last moves to the final row.
func (p *Pager) Last() {
	if p.Count > 0 {
		p.Index = p.Count - 1
	}
}

// Navigate applies a navigation key. It reports whether the key was a
// navigation binding.
func (p *Pager) Navigate(k keys.Key, km keys.KeyMap) bool {
	switch {
	case keys.Matches(k, km.Up):
		p.Up()
	case keys.Matches(k, km.Down):
		p.Down()
	case keys.Matches(k, km.Left):
		p.PrevPage()
	case keys.Matches(k, km.Right):
		p.NextPage()
	case keys.Matches(k, km.Home):
		p.First()
	case keys.Matches(k, km.End):
		p.Last()
	default:
		return false
	}
	return true
}
