package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		perPage     int
		current     int
		maxVisible  int
		wantPages   []int
		wantFirst   bool
		wantLast    bool
		wantTotal   int
		wantStart   int
		wantEnd     int
		wantIsFirst bool
		wantIsLast  bool
	}{
		{
			name: "all pages fit", total: 47, perPage: 10, current: 3, maxVisible: 5,
			wantPages: []int{1, 2, 3, 4, 5}, wantTotal: 5, wantStart: 21, wantEnd: 30,
		},
		{
			name: "centered in the middle", total: 200, perPage: 10, current: 10, maxVisible: 5,
			wantPages: []int{8, 9, 10, 11, 12}, wantFirst: true, wantLast: true,
			wantTotal: 20, wantStart: 91, wantEnd: 100,
		},
		{
			name: "clamped at the leading edge", total: 200, perPage: 10, current: 2, maxVisible: 5,
			wantPages: []int{1, 2, 3, 4, 5}, wantLast: true, wantTotal: 20, wantStart: 11, wantEnd: 20,
		},
		{
			name: "re-anchored at the trailing edge", total: 200, perPage: 10, current: 19, maxVisible: 5,
			wantPages: []int{16, 17, 18, 19, 20}, wantFirst: true, wantTotal: 20, wantStart: 181, wantEnd: 190,
		},
		{
			name: "last page", total: 200, perPage: 10, current: 20, maxVisible: 5,
			wantPages: []int{16, 17, 18, 19, 20}, wantFirst: true, wantTotal: 20,
			wantStart: 191, wantEnd: 200, wantIsLast: true,
		},
		{
			name: "first page", total: 25, perPage: 10, current: 1, maxVisible: 5,
			wantPages: []int{1, 2, 3}, wantTotal: 3, wantStart: 1, wantEnd: 10, wantIsFirst: true,
		},
		{
			name: "even window width", total: 100, perPage: 10, current: 5, maxVisible: 4,
			wantPages: []int{3, 4, 5, 6}, wantFirst: true, wantLast: true,
			wantTotal: 10, wantStart: 41, wantEnd: 50,
		},
		{
			name: "single page", total: 4, perPage: 10, current: 1, maxVisible: 5,
			wantPages: []int{1}, wantTotal: 1, wantStart: 1, wantEnd: 4, wantIsFirst: true, wantIsLast: true,
		},
		{
			name: "no items", total: 0, perPage: 10, current: 1, maxVisible: 5,
			wantPages: []int{}, wantTotal: 0, wantStart: 1, wantEnd: 0, wantIsFirst: true,
		},
		{
			name: "current past the end is not clamped", total: 30, perPage: 10, current: 7, maxVisible: 5,
			wantPages: []int{1, 2, 3}, wantTotal: 3, wantStart: 61, wantEnd: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Calculate(tt.total, tt.perPage, tt.current, tt.maxVisible)
			assert.Equal(t, tt.wantPages, w.VisiblePages)
			assert.Equal(t, tt.wantTotal, w.TotalPages)
			assert.Equal(t, tt.wantFirst, w.ShowFirst, "ShowFirst")
			assert.Equal(t, tt.wantLast, w.ShowLast, "ShowLast")
			assert.Equal(t, tt.wantStart, w.StartItem, "StartItem")
			assert.Equal(t, tt.wantEnd, w.EndItem, "EndItem")
			assert.Equal(t, tt.wantIsFirst, w.IsFirstPage, "IsFirstPage")
			assert.Equal(t, tt.wantIsLast, w.IsLastPage, "IsLastPage")
		})
	}
}

func TestCalculate_WindowInvariants(t *testing.T) {
	for total := 0; total <= 120; total += 7 {
		for current := 1; current <= 13; current++ {
			for maxVisible := 1; maxVisible <= 7; maxVisible++ {
				w := Calculate(total, 10, current, maxVisible)
				assert.Len(t, w.VisiblePages, min(w.TotalPages, maxVisible))
				for i := 1; i < len(w.VisiblePages); i++ {
					assert.Equal(t, w.VisiblePages[i-1]+1, w.VisiblePages[i], "window must be contiguous")
				}
				if current <= w.TotalPages && len(w.VisiblePages) > 0 {
					assert.Contains(t, w.VisiblePages, current)
				}
			}
		}
	}
}

func TestCalculate_ClampsInputs(t *testing.T) {
	w := Calculate(-5, 0, 0, 0)
	assert.Equal(t, 0, w.TotalItems)
	assert.Equal(t, 1, w.ItemsPerPage)
	assert.Equal(t, 1, w.CurrentPage)
	assert.Empty(t, w.VisiblePages)
	assert.False(t, w.HasItems())

	w = Calculate(3, 1, 2, -1)
	assert.Equal(t, []int{2}, w.VisiblePages)
	assert.True(t, w.ShowFirst)
	assert.True(t, w.ShowLast)
	assert.True(t, w.HasItems())
}

func TestCalculate_HugePage(t *testing.T) {
	w := Calculate(2, 10, math.MaxInt, 5)
	assert.Equal(t, math.MaxInt, w.CurrentPage)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, []int{1}, w.VisiblePages)
	assert.Greater(t, w.StartItem, w.TotalItems, "a page past the end has no first item")
	assert.Equal(t, 2, w.EndItem)
	assert.False(t, w.IsLastPage)

	w = Calculate(100, 3, math.MaxInt-1, math.MaxInt)
	assert.Equal(t, 34, w.TotalPages)
	assert.Len(t, w.VisiblePages, 34)
	assert.Equal(t, math.MaxInt, w.StartItem)
	assert.Equal(t, 100, w.EndItem)
}
