package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/filter"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/paging"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/store"
)

// View is what a single viewer currently shows
type View struct {
	Criteria     entity.Criteria
	Page         entity.PageInfo
	PageRows     []usecase.TransactionRow
	Window       entity.VisibleRange
	Summary      usecase.Summary
	Freshness    entity.Freshness
	RemoteSearch bool
	Err          error
	UpdatedAt    time.Time
}

// VisibleRows returns the rows of the current page inside the scroll window
func (v View) VisibleRows() []usecase.TransactionRow {
	end := min(v.Window.EndIndex, len(v.PageRows))
	start := min(v.Window.StartIndex, end)
	return v.PageRows[start:end:end]
}

// Session is one viewer of the dashboard. It keeps its own criteria, page and scroll
// window over the shared snapshot, and may narrow the search term on the server
// without touching the snapshot other viewers see.
type Session struct {
	svc       *Service
	remote    *store.Store[entity.Transaction]
	pager     *paging.Pager
	window    *paging.VirtualWindow
	debouncer *filter.Debouncer

	mu            sync.Mutex
	criteria      entity.Criteria
	remoteActive  bool
	remoteRecords []entity.Transaction
	searchGen     uint64
	searchErr     error
	filtered      []entity.Transaction
	view          View

	listenersMu sync.Mutex
	listeners   map[int]func(View)
	nextID      int

	unsubscribes []func()
}

// NewSession opens a viewer over the shared snapshot with a scroll container of the given height
func (s *Service) NewSession(containerHeight float64) (*Session, error) {
	window, err := paging.NewVirtualWindow(s.timeProvider, s.cfg.Window, containerHeight)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		svc:       s,
		remote:    store.NewStore[entity.Transaction](Dataset, nil, s.timeProvider, s.logger),
		pager:     paging.NewPager(s.cfg.PageSize),
		window:    window,
		debouncer: filter.NewDebouncer(s.timeProvider, s.cfg.SearchDebounce),
		listeners: make(map[int]func(View)),
	}
	sess.unsubscribes = []func(){
		s.Subscribe(func() { sess.rebuild(false) }),
		s.detector.Subscribe(sess.onFreshness),
		window.Subscribe(sess.onWindow),
	}
	sess.rebuild(false)
	return sess, nil
}

// Load fetches the shared snapshot if it is not loaded yet
func (s *Session) Load(ctx context.Context) error {
	return s.svc.Load(ctx)
}

// Refresh refetches the shared snapshot
func (s *Session) Refresh(ctx context.Context) error {
	return s.svc.Refresh(ctx)
}

// View returns the current view
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Subscribe registers fn to be called with every new view
func (s *Session) Subscribe(fn func(View)) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

// SetSearch applies the search term once typing has paused for the debounce delay.
// A local search replaces any server-narrowed result.
func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	s.searchGen++
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		s.updateCriteria(func(c *entity.Criteria) { c.Search = term }, true)
	})
}

// SetFilters replaces the type, sign and date filters, keeping the search term
func (s *Session) SetFilters(txType entity.TransactionType, sign entity.AmountSign, dateRange entity.DateRange) {
	s.updateCriteria(func(c *entity.Criteria) {
		c.Type = txType
		c.AmountSign = sign
		c.DateRange = dateRange
	}, false)
}

// SetCriteria replaces every criterion at once
func (s *Session) SetCriteria(criteria entity.Criteria) {
	s.debouncer.Cancel()
	s.mu.Lock()
	searchChanged := criteria.Search != s.criteria.Search
	if searchChanged {
		s.searchGen++
	}
	s.mu.Unlock()

	s.updateCriteria(func(c *entity.Criteria) { *c = criteria }, searchChanged)
}

// ClearFilters drops every criterion and any server-narrowed search
func (s *Session) ClearFilters() {
	s.SetCriteria(entity.Criteria{})
}

// SearchRemote asks the source to narrow the snapshot by term. The result is kept
// per session; a response superseded by a newer search or by local typing is dropped
// and never becomes visible, even when it resolves before the newer request.
func (s *Session) SearchRemote(ctx context.Context, term string) error {
	s.debouncer.Cancel()
	term = strings.TrimSpace(term)
	if term == "" {
		s.ClearRemoteSearch()
		return nil
	}

	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	fetchCtx, cancel := s.svc.timeProvider.WithTimeout(ctx, s.svc.cfg.FetchTimeout)
	defer cancel()

	var fetched []entity.Transaction
	_, err := s.remote.Search(fetchCtx, store.NewSignature(Dataset, "search", term),
		func(ctx context.Context) ([]entity.Transaction, error) {
			records, err := s.svc.source.SearchTransactions(ctx, term, entity.Criteria{Search: term})
			fetched = records
			return records, err
		})
	if errs.IsStaleResponse(err) {
		return nil
	}

	s.mu.Lock()
	if gen != s.searchGen {
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.searchErr = err
		s.mu.Unlock()
		s.publish(nil)
		return err
	}
	if fetched == nil {
		fetched = []entity.Transaction{}
	}
	s.searchErr = nil
	s.remoteActive = true
	s.remoteRecords = fetched
	s.criteria.Search = term
	s.mu.Unlock()

	s.rebuild(true)
	return nil
}

// ClearRemoteSearch returns to filtering the shared snapshot locally
func (s *Session) ClearRemoteSearch() {
	s.mu.Lock()
	s.searchGen++
	wasActive := s.remoteActive
	s.remoteActive = false
	s.remoteRecords = nil
	s.searchErr = nil
	s.mu.Unlock()

	if wasActive {
		s.rebuild(true)
		return
	}
	s.publish(nil)
}

// GoToPage moves to page n. It returns false when n is out of range or already current.
func (s *Session) GoToPage(n int) bool {
	return s.movePage(func(p *paging.Pager) bool { return p.GoTo(n) })
}

// NextPage moves forward one page
func (s *Session) NextPage() bool {
	return s.movePage((*paging.Pager).Next)
}

// PrevPage moves back one page
func (s *Session) PrevPage() bool {
	return s.movePage((*paging.Pager).Prev)
}

// OnScroll feeds a scroll offset of the current page to the virtual window
func (s *Session) OnScroll(scrollTop float64) {
	s.window.OnScroll(scrollTop)
}

// SetContainerHeight resizes the scroll container
func (s *Session) SetContainerHeight(height float64) {
	s.window.SetContainerHeight(height)
}

// Acknowledge clears the new-records flag for every viewer
func (s *Session) Acknowledge() {
	s.svc.Acknowledge()
}

// Close cancels pending timers and detaches from the shared snapshot
func (s *Session) Close() {
	s.debouncer.Cancel()
	s.window.Close()
	for _, unsubscribe := range s.unsubscribes {
		unsubscribe()
	}
}

func (s *Session) updateCriteria(update func(*entity.Criteria), searchChanged bool) {
	s.mu.Lock()
	update(&s.criteria)
	if searchChanged {
		s.remoteActive = false
		s.remoteRecords = nil
		s.searchErr = nil
	}
	s.mu.Unlock()

	s.rebuild(true)
}

// rebuild refilters and reaggregates, then brings the page and window in line.
// A criteria change sends the viewer back to the first page.
func (s *Session) rebuild(resetPage bool) {
	s.mu.Lock()
	all := s.svc.store.Records()
	source := all
	if s.remoteActive {
		source = s.remoteRecords
	}
	s.filtered = s.svc.engine.Apply(source, s.criteria)
	s.view.Summary = s.svc.summarize(all, s.filtered, s.criteria)
	if resetPage {
		s.pager.Reset()
	}
	s.pager.SetTotal(len(s.filtered))
	rows := s.pageLocked()
	s.mu.Unlock()

	s.syncWindow(rows, resetPage)
}

func (s *Session) movePage(move func(*paging.Pager) bool) bool {
	s.mu.Lock()
	if !move(s.pager) {
		s.mu.Unlock()
		return false
	}
	rows := s.pageLocked()
	s.mu.Unlock()

	s.syncWindow(rows, true)
	return true
}

func (s *Session) pageLocked() int {
	s.view.PageRows = s.svc.tagRows(paging.Slice(s.pager, s.filtered))
	s.view.Page = s.pager.Info()
	return len(s.view.PageRows)
}

// syncWindow runs outside s.mu since the window notifies synchronously
func (s *Session) syncWindow(rows int, reset bool) {
	if reset {
		s.window.Reset()
	}
	s.window.SetTotalRows(rows)
	s.publish(func(v *View) { v.Window = s.window.Current() })
}

func (s *Session) onWindow(r entity.VisibleRange) {
	s.publish(func(v *View) { v.Window = r })
}

func (s *Session) onFreshness(entity.Freshness) {
	s.mu.Lock()
	s.pageLocked()
	s.mu.Unlock()
	s.publish(nil)
}

func (s *Session) publish(update func(*View)) {
	s.mu.Lock()
	if update != nil {
		update(&s.view)
	}
	s.view.Criteria = s.criteria
	s.view.RemoteSearch = s.remoteActive
	s.view.Freshness = s.svc.detector.Freshness()
	s.view.Err = s.searchErr
	if s.view.Err == nil {
		s.view.Err = s.svc.store.Err()
	}
	s.view.UpdatedAt = s.svc.timeProvider.Now()
	view := s.view
	s.mu.Unlock()

	s.listenersMu.Lock()
	listeners := make([]func(View), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(view)
	}
}
