package paging

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/ledger-dashboard/mocks/port/core"
)

func TestComputeVisible(t *testing.T) {
	t.Run("should follow the windowing formulas", func(t *testing.T) {
		r, err := ComputeVisible(entity.Viewport{
			ScrollTop:       1000,
			ContainerHeight: 480,
			RowHeight:       50,
			BufferRows:      5,
			TotalRows:       500,
		})
		require.NoError(t, err)

		assert.Equal(t, 15, r.StartIndex)
		assert.Equal(t, 35, r.EndIndex)
		assert.Equal(t, 750.0, r.OffsetY)
		assert.Equal(t, 25000.0, r.TotalHeight)
		assert.Equal(t, 20, r.Len())
	})

	t.Run("should clamp at the top and bottom", func(t *testing.T) {
		top, err := ComputeVisible(entity.Viewport{ScrollTop: -200, ContainerHeight: 100, RowHeight: 10, BufferRows: 3, TotalRows: 50})
		require.NoError(t, err)
		assert.Equal(t, 0, top.StartIndex)
		assert.Equal(t, 13, top.EndIndex)

		bottom, err := ComputeVisible(entity.Viewport{ScrollTop: 1e9, ContainerHeight: 100, RowHeight: 10, BufferRows: 3, TotalRows: 50})
		require.NoError(t, err)
		assert.Equal(t, 37, bottom.StartIndex)
		assert.Equal(t, 50, bottom.EndIndex)
	})

	t.Run("should render every row of a short list", func(t *testing.T) {
		r, err := ComputeVisible(entity.Viewport{ScrollTop: 40, ContainerHeight: 600, RowHeight: 48, BufferRows: 10, TotalRows: 4})
		require.NoError(t, err)
		assert.Equal(t, 0, r.StartIndex)
		assert.Equal(t, 4, r.EndIndex)
	})

	t.Run("should handle an empty list", func(t *testing.T) {
		r, err := ComputeVisible(entity.Viewport{ContainerHeight: 600, RowHeight: 48, BufferRows: 10})
		require.NoError(t, err)
		assert.Equal(t, entity.VisibleRange{}, r)
	})

	t.Run("should reject unusable geometry", func(t *testing.T) {
		invalid := []entity.Viewport{
			{ContainerHeight: 100, RowHeight: 0, TotalRows: 10},
			{ContainerHeight: 100, RowHeight: -1, TotalRows: 10},
			{ContainerHeight: 100, RowHeight: math.NaN(), TotalRows: 10},
			{ContainerHeight: -1, RowHeight: 10, TotalRows: 10},
			{ContainerHeight: 100, RowHeight: 10, BufferRows: -1, TotalRows: 10},
			{ContainerHeight: 100, RowHeight: 10, TotalRows: -1},
			{ScrollTop: math.NaN(), ContainerHeight: 100, RowHeight: 10, TotalRows: 10},
		}
		for _, v := range invalid {
			_, err := ComputeVisible(v)
			assert.ErrorIs(t, err, errs.ErrInvalidViewport, "%+v", v)
		}
	})
}

func TestComputeVisible_Bounds(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 100, 1000} {
		for _, containerHeight := range []float64{0, 35, 100, 480, 2000} {
			for _, buffer := range []int{0, 1, 5} {
				rowHeight := 10.0
				maxScroll := float64(total)*rowHeight + 50
				for scrollTop := -20.0; scrollTop <= maxScroll; scrollTop += 7 {
					r, err := ComputeVisible(entity.Viewport{
						ScrollTop:       scrollTop,
						ContainerHeight: containerHeight,
						RowHeight:       rowHeight,
						BufferRows:      buffer,
						TotalRows:       total,
					})
					require.NoError(t, err)

					assert.True(t, 0 <= r.StartIndex && r.StartIndex <= r.EndIndex && r.EndIndex <= total,
						"total=%d ch=%v scroll=%v range=%+v", total, containerHeight, scrollTop, r)

					minVisible := min(total, int(math.Ceil(containerHeight/rowHeight)))
					assert.GreaterOrEqual(t, r.Len(), minVisible,
						"total=%d ch=%v scroll=%v range=%+v", total, containerHeight, scrollTop, r)
				}
			}
		}
	}
}

func newTestWindow(t *testing.T) (*VirtualWindow, *coremocks.FakeTimeProvider, *[]entity.VisibleRange) {
	clock := coremocks.NewFakeTimeProvider(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
	w, err := NewVirtualWindow(clock, WindowConfig{RowHeight: 10, BufferRows: 5, Throttle: 16 * coreport.Millisecond, Threshold: 5}, 100)
	require.NoError(t, err)

	published := &[]entity.VisibleRange{}
	w.Subscribe(func(r entity.VisibleRange) { *published = append(*published, r) })
	w.SetTotalRows(1000)
	return w, clock, published
}

func TestVirtualWindow(t *testing.T) {
	t.Run("should publish when the row count changes", func(t *testing.T) {
		_, _, published := newTestWindow(t)

		require.Len(t, *published, 1)
		assert.Equal(t, entity.VisibleRange{StartIndex: 0, EndIndex: 15, OffsetY: 0, TotalHeight: 10000}, (*published)[0])
	})

	t.Run("should coalesce scroll events into one frame", func(t *testing.T) {
		w, clock, published := newTestWindow(t)

		w.OnScroll(100)
		w.OnScroll(200)
		w.OnScroll(300)
		assert.Equal(t, 1, clock.Pending())
		assert.Len(t, *published, 1)

		clock.Advance(16 * time.Millisecond)

		require.Len(t, *published, 2)
		assert.Equal(t, 25, (*published)[1].StartIndex)
		assert.Equal(t, 45, (*published)[1].EndIndex)
		assert.Equal(t, 250.0, (*published)[1].OffsetY)
		assert.Equal(t, (*published)[1], w.Current())
	})

	t.Run("should skip movements within the threshold", func(t *testing.T) {
		w, clock, published := newTestWindow(t)

		w.OnScroll(500)
		clock.Advance(16 * time.Millisecond)
		require.Len(t, *published, 2)

		w.OnScroll(540)
		clock.Advance(16 * time.Millisecond)
		assert.Len(t, *published, 2)
		assert.Equal(t, 45, w.Current().StartIndex)

		w.OnScroll(570)
		clock.Advance(16 * time.Millisecond)
		require.Len(t, *published, 3)
		assert.Equal(t, 52, w.Current().StartIndex)
	})

	t.Run("should always publish when reaching the end", func(t *testing.T) {
		w, clock, published := newTestWindow(t)

		w.OnScroll(9850)
		clock.Advance(16 * time.Millisecond)
		require.Len(t, *published, 2)

		w.OnScroll(1e6)
		clock.Advance(16 * time.Millisecond)
		require.Len(t, *published, 3)
		assert.Equal(t, 1000, w.Current().EndIndex)
	})

	t.Run("should reset to the top and drop a pending frame", func(t *testing.T) {
		w, clock, published := newTestWindow(t)

		w.OnScroll(3000)
		clock.Advance(16 * time.Millisecond)
		w.OnScroll(5000)
		w.Reset()
		assert.Equal(t, 0, clock.Pending())

		clock.Advance(time.Second)
		assert.Equal(t, 0, w.Current().StartIndex)
		assert.Len(t, *published, 3)

		w.Close()
	})
}
