package entity

import "time"

// PageInfo describes the current page of a paged list
type PageInfo struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}

// Viewport is the scroll geometry of a fixed-height list container
type Viewport struct {
	ScrollTop       float64
	ContainerHeight float64
	RowHeight       float64
	BufferRows      int
	TotalRows       int
}

// VisibleRange is the half-open window [StartIndex, EndIndex) of rows to materialize.
// OffsetY translates the rendered rows; TotalHeight is the full scroll extent.
type VisibleRange struct {
	StartIndex  int
	EndIndex    int
	OffsetY     float64
	TotalHeight float64
}

// Len returns the number of rows in the window
func (r VisibleRange) Len() int {
	return r.EndIndex - r.StartIndex
}

// Freshness is the "new records" indicator of a dataset
type Freshness struct {
	HasNew    bool
	Count     int
	ExpiresAt time.Time // zero when HasNew is false
}
