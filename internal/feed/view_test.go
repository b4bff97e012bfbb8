package feed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/record"
)

func posts(n int) []record.Record {
	out := make([]record.Record, 0, n)
	for i := 0; i < n; i++ {
		category := "Tech"
		if i%2 == 1 {
			category = "Design"
		}
		out = append(out, record.Record{
			"titulo":    fmt.Sprintf("post %02d", i),
			"categoria": category,
			"fecha":     fmt.Sprintf("2024-01-%02d", i+1),
		})
	}
	return out
}

func TestView_Defaults(t *testing.T) {
	v := NewView(nil, Options{})

	assert.Equal(t, query.DefaultFilterSpec(), v.Filters())
	assert.Equal(t, 1, v.Page())
	assert.True(t, v.Result().Empty())
	assert.Empty(t, v.Window().VisiblePages)
	assert.Empty(t, v.Categories())
}

func TestView_PagingAndFilters(t *testing.T) {
	v := NewView(nil, Options{ItemsPerPage: 6, MaxVisiblePages: 3})
	v.SetRecords(posts(20))

	require.Equal(t, 20, v.Result().Total)
	assert.Equal(t, 4, v.Result().TotalPages)
	assert.Equal(t, []string{"Design", "Tech"}, v.Categories())
	assert.Equal(t, "post 19", v.Result().Items[0]["titulo"], "newest first")

	assert.True(t, v.SetPage(3))
	assert.Equal(t, 3, v.Page())
	assert.Equal(t, []int{2, 3, 4}, v.Window().VisiblePages)
	assert.Equal(t, 13, v.Window().StartItem)
	assert.Len(t, v.Result().Items, 6)

	assert.False(t, v.SetPage(3), "same page")
	assert.False(t, v.SetPage(9), "past the end")

	assert.True(t, v.Navigate((*pagination.Navigator).Last))
	assert.Len(t, v.Result().Items, 2)
	assert.False(t, v.Navigate((*pagination.Navigator).Next))

	v.SetFilters(query.FilterSpec{Category: "design", SortBy: query.SortOldest})
	assert.Equal(t, 1, v.Page(), "filter change resets to page 1")
	assert.Equal(t, 10, v.Result().Total)
	assert.Equal(t, "post 01", v.Result().Items[0]["titulo"])
	assert.True(t, v.Filters().HasActiveFilters())

	v.ClearFilters()
	assert.False(t, v.Filters().HasActiveFilters())
	assert.Equal(t, 20, v.Result().Total)
}

func TestView_SetRecordsKeepsPage(t *testing.T) {
	v := NewView(nil, Options{ItemsPerPage: 5})
	v.SetRecords(posts(20))
	require.True(t, v.SetPage(2))

	v.SetRecords(posts(12))
	assert.Equal(t, 2, v.Page())
	assert.Len(t, v.Result().Items, 5)
}

func TestView_CustomSentinel(t *testing.T) {
	v := NewView(query.New(query.WithAllCategories("all")), Options{})
	assert.Equal(t, "all", v.Filters().Category)

	v.SetRecords(posts(3))
	assert.Equal(t, 3, v.Result().Total)
}
