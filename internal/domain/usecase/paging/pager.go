package paging

import (
	"sync"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
)

// DefaultPageSize is the engine-level page size
const DefaultPageSize = 500

// TotalPages returns ceil(total/size), never less than 1
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Paginate returns the 1-based page of items. The result aliases items.
// A page outside [1, TotalPages] yields an empty slice.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 || page > TotalPages(len(items), size) {
		return items[:0:0]
	}
	start := (page - 1) * size
	if start >= len(items) {
		return items[:0:0]
	}
	end := min(start+size, len(items))
	return items[start:end:end]
}

// Pager tracks the current page of a list whose size may change
type Pager struct {
	mu    sync.Mutex
	size  int
	page  int
	total int
}

// NewPager creates a pager on page 1
func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{size: size, page: 1}
}

// Page returns the current 1-based page
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Size returns the page size
func (p *Pager) Size() int {
	return p.size
}

// TotalPages returns the page count of the current total
func (p *Pager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return TotalPages(p.total, p.size)
}

// Info returns the page metadata
func (p *Pager) Info() entity.PageInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return entity.PageInfo{
		Page:       p.page,
		PageSize:   p.size,
		TotalPages: TotalPages(p.total, p.size),
		TotalItems: p.total,
	}
}

// GoTo moves to page n. Out-of-range pages are ignored and false is returned.
func (p *Pager) GoTo(n int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 || n > TotalPages(p.total, p.size) || n == p.page {
		return false
	}
	p.page = n
	return true
}

// Next moves forward one page if possible
func (p *Pager) Next() bool {
	return p.GoTo(p.Page() + 1)
}

// Prev moves back one page if possible
func (p *Pager) Prev() bool {
	return p.GoTo(p.Page() - 1)
}

// Reset returns to the first page
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = 1
}

// SetTotal updates the item count, clamping the current page when the list shrank
func (p *Pager) SetTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total < 0 {
		total = 0
	}
	p.total = total
	if last := TotalPages(total, p.size); p.page > last {
		p.page = last
	}
}

// Slice returns the current page of items
func Slice[T any](p *Pager, items []T) []T {
	return Paginate(items, p.Page(), p.Size())
}
