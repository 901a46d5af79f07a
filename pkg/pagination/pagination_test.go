package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginator_Page(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		perPage  int
		raw      string
		wantPage int
		wantNum  int
	}{
		{"空页码返回第一页", 10, 3, "", 1, 4},
		{"非数字页码返回第一页", 10, 3, "abc", 1, 4},
		{"小于1返回第一页", 10, 3, "0", 1, 4},
		{"负数返回第一页", 10, 3, "-2", 1, 4},
		{"超过最后一页返回最后一页", 10, 3, "99", 4, 4},
		{"超出int范围返回最后一页", 10, 3, "99999999999999999999", 4, 4},
		{"带加号的超大页码返回最后一页", 10, 3, "+99999999999999999999", 4, 4},
		{"超出int范围的负数返回第一页", 10, 3, "-99999999999999999999", 1, 4},
		{"正常页码", 10, 3, "2", 2, 4},
		{"整除时页数正确", 8, 4, "2", 2, 2},
		{"空结果集只有一页", 0, 3, "5", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := New(tt.total, tt.perPage).Page(tt.raw)
			assert.Equal(t, tt.wantPage, page.Number)
			assert.Equal(t, tt.wantNum, page.NumPages)
		})
	}
}

func TestPage_OffsetAndNavigation(t *testing.T) {
	page := New(10, 3).Page("2")

	assert.Equal(t, 3, page.Offset())
	assert.Equal(t, 3, page.Limit())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())

	last := New(10, 3).Page("4")
	assert.Equal(t, 9, last.Offset())
	assert.False(t, last.HasNext())

	first := New(10, 3).Page("1")
	assert.False(t, first.HasPrevious())
}
