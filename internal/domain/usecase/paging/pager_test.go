package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		total, size, expected int
	}{
		{0, 500, 1},
		{1, 500, 1},
		{500, 500, 1},
		{501, 500, 2},
		{1500, 500, 3},
		{7, 3, 3},
		{7, 0, 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, TotalPages(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestPaginate_CoversEveryItemExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 10, 499, 500, 501, 1234} {
		items := sequence(n)
		for _, size := range []int{1, 2, 3, 7, 10, 500} {
			var joined []int
			for page := 1; page <= TotalPages(n, size); page++ {
				joined = append(joined, Paginate(items, page, size)...)
			}
			if n == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, items, joined, "n=%d size=%d", n, size)
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := sequence(10)
	assert.Empty(t, Paginate(items, 0, 5))
	assert.Empty(t, Paginate(items, 3, 5))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, Paginate(items, 2, 5))
}

func TestPaginate_DoesNotLetAppendLeakIntoArena(t *testing.T) {
	items := sequence(10)
	page := Paginate(items, 1, 5)
	_ = append(page, 99)
	assert.Equal(t, 5, items[5])
}

func TestPager(t *testing.T) {
	t.Run("should ignore out-of-range navigation", func(t *testing.T) {
		p := NewPager(500)
		p.SetTotal(1200)

		assert.False(t, p.GoTo(0))
		assert.False(t, p.GoTo(4))
		assert.Equal(t, 1, p.Page())

		assert.True(t, p.GoTo(3))
		assert.False(t, p.Next())
		assert.True(t, p.Prev())
		assert.Equal(t, 2, p.Page())
	})

	t.Run("should clamp when the list shrinks and reset to the first page", func(t *testing.T) {
		p := NewPager(10)
		p.SetTotal(100)
		require.True(t, p.GoTo(8))

		p.SetTotal(25)
		assert.Equal(t, 3, p.Page())

		p.Reset()
		info := p.Info()
		assert.Equal(t, 1, info.Page)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 25, info.TotalItems)
	})

	t.Run("should slice the current page", func(t *testing.T) {
		p := NewPager(0)
		assert.Equal(t, DefaultPageSize, p.Size())

		items := sequence(1200)
		p.SetTotal(len(items))
		require.True(t, p.GoTo(3))

		page := Slice(p, items)
		require.Len(t, page, 200)
		assert.Equal(t, 1000, page[0])
	})
}
