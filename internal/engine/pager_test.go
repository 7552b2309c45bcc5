package engine

import (
	"testing"

	"github.com/muurk/tuiprompt/internal/keys"
)

func TestNewPager_Clamps(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		index     int
		pageSize  int
		wantIndex int
		wantSize  int
	}{
		{"in range", 10, 3, 4, 3, 4},
		{"negative index", 10, -2, 4, 0, 4},
		{"index past end", 10, 42, 4, 9, 4},
		{"default page size", 10, 0, 0, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.count, tt.index, tt.pageSize, true)
			if p.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", p.Index, tt.wantIndex)
			}
			if p.PageSize != tt.wantSize {
				t.Errorf("PageSize = %d, want %d", p.PageSize, tt.wantSize)
			}
		})
	}
}

func TestPager_Pages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{10, 5, 2},
		{11, 5, 3},
		{1, 5, 1},
		{5, 5, 1},
	}
	for _, tt := range tests {
		p := NewPager(tt.count, 0, tt.size, true)
		if got := p.Pages(); got != tt.want {
			t.Errorf("Pages(%d/%d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestPager_UpWrapsToLastPage(t *testing.T) {
	// 12 options, 5 per page: Up from row 0 lands on row 11, page 3.
	p := NewPager(12, 0, 5, true)
	p.Up()
	if p.Index != 11 {
		t.Errorf("Index = %d, want 11", p.Index)
	}
	if p.Page() != 3 {
		t.Errorf("Page = %d, want 3", p.Page())
	}
}

func TestPager_UpCrossesPageEdge(t *testing.T) {
	p := NewPager(12, 5, 5, true)
	p.Up()
	if p.Index != 4 || p.Page() != 1 {
		t.Errorf("got index %d page %d, want index 4 page 1", p.Index, p.Page())
	}
}

func TestPager_DownWraps(t *testing.T) {
	p := NewPager(12, 11, 5, true)
	p.Down()
	if p.Index != 0 || p.Page() != 1 {
		t.Errorf("got index %d page %d, want index 0 page 1", p.Index, p.Page())
	}
}

func TestPager_PageJumps(t *testing.T) {
	p := NewPager(12, 7, 5, true)

	p.NextPage()
	if p.Index != 10 {
		t.Errorf("NextPage: Index = %d, want 10", p.Index)
	}
	p.NextPage()
	if p.Index != 0 {
		t.Errorf("NextPage wrap: Index = %d, want 0", p.Index)
	}
	p.PrevPage()
	if p.Index != 10 {
		t.Errorf("PrevPage wrap: Index = %d, want 10", p.Index)
	}
	p.PrevPage()
	if p.Index != 5 {
		t.Errorf("PrevPage: Index = %d, want 5", p.Index)
	}
}

func TestPager_PageJumpsNeedPagination(t *testing.T) {
	p := NewPager(12, 7, 5, false)
	p.NextPage()
	p.PrevPage()
	if p.Index != 7 {
		t.Errorf("Index = %d, want 7 (unchanged)", p.Index)
	}
	from, to := p.Window()
	if from != 0 || to != 12 {
		t.Errorf("Window = [%d,%d), want [0,12)", from, to)
	}
}

func TestPager_HomeEnd(t *testing.T) {
	p := NewPager(12, 7, 5, true)
	p.Last()
	if p.Index != 11 {
		t.Errorf("Last: Index = %d, want 11", p.Index)
	}
	p.First()
	if p.Index != 0 {
		t.Errorf("First: Index = %d, want 0", p.Index)
	}
}

// Every key sequence keeps the cursor in range and inside the visible window.
func TestPager_WindowAlwaysContainsCursor(t *testing.T) {
	km := keys.DefaultKeyMap()
	seq := keys.ParseSequence("up,up,left,down,right,right,end,down,home,up,left,left,down,down,down,down,down,down")

	for _, count := range []int{1, 4, 5, 6, 12, 13} {
		p := NewPager(count, 0, 5, true)
		for _, k := range seq {
			if !p.Navigate(k, km) {
				t.Fatalf("Navigate(%s) not handled", k)
			}
			if p.Index < 0 || p.Index >= count {
				t.Fatalf("count %d: Index %d out of range", count, p.Index)
			}
			from, to := p.Window()
			if p.Index < from || p.Index >= to {
				t.Fatalf("count %d: Index %d outside window [%d,%d)", count, p.Index, from, to)
			}
		}
	}
}

func TestPager_NavigateIgnoresOtherKeys(t *testing.T) {
	p := NewPager(3, 1, 5, false)
	if p.Navigate(keys.Printable("x"), keys.DefaultKeyMap()) {
		t.Error("Expected printable key to be ignored")
	}
	if p.Index != 1 {
		t.Errorf("Index = %d, want 1", p.Index)
	}
}

// n presses of Up or Down bring the cursor back to where it started, for
// every list length and start row. With one option both are no-ops.
func TestPager_FullCycleReturnsToStart(t *testing.T) {
	for _, paginated := range []bool{false, true} {
		for n := 1; n <= 13; n++ {
			for start := 0; start < n; start++ {
				for _, dir := range []string{"up", "down"} {
					p := NewPager(n, start, 5, paginated)
					step := p.Up
					if dir == "down" {
						step = p.Down
					}

					for i := 0; i < n; i++ {
						step()
						if n == 1 && p.Index != start {
							t.Fatalf("paginated=%v n=1: %s moved cursor to %d", paginated, dir, p.Index)
						}
					}
					if p.Index != start {
						t.Errorf("paginated=%v n=%d start=%d: %d x %s ended at %d", paginated, n, start, n, dir, p.Index)
					}
				}
			}
		}
	}
}
