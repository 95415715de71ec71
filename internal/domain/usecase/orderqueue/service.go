package orderqueue

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/detector"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/paging"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/store"
)

// Dataset names the order snapshot in cache keys and logs
const Dataset = "orders"

// Config tunes the order queue
type Config struct {
	PageSize        int
	FreshnessWindow coreport.Duration
	FetchTimeout    coreport.Duration
	RowHeight       float64
}

// DefaultConfig returns the stock queue settings
func DefaultConfig() Config {
	return Config{
		PageSize:        paging.DefaultPageSize,
		FreshnessWindow: detector.DefaultWindow,
		FetchTimeout:    30 * coreport.Second,
		RowHeight:       paging.DefaultRowHeight,
	}
}

// Service serves the order queue: newest orders first, narrowed by status and search,
// paged and windowed like the transaction list.
type Service struct {
	source       persistence.OrderSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config

	store    *store.Store[entity.Order]
	detector *detector.Detector[entity.Order]

	observeMu sync.Mutex
	observed  uint64

	unsubscribe func()
}

var _ usecase.OrderQueueUseCase = (*Service)(nil)

// NewService wires the queue around an order source
func NewService(
	source persistence.OrderSource,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	defaults := DefaultConfig()
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaults.FetchTimeout
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = defaults.RowHeight
	}

	s := &Service{
		source:       source,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		store:        store.NewStore[entity.Order](Dataset, cache, timeProvider, logger),
		detector:     detector.NewDetector[entity.Order](Dataset, cfg.FreshnessWindow, timeProvider, logger),
	}
	s.unsubscribe = s.store.Subscribe(s.onSnapshot)
	return s
}

// Load fetches the order snapshot, served from the cache when already fetched
func (s *Service) Load(ctx context.Context) error {
	return s.fetch(ctx, false)
}

// Refresh implements usecase.OrderQueueUseCase
func (s *Service) Refresh(ctx context.Context) error {
	return s.fetch(ctx, true)
}

func (s *Service) fetch(ctx context.Context, refresh bool) error {
	fetchCtx, cancel := s.timeProvider.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	signature := store.NewSignature(Dataset)
	var err error
	if refresh {
		_, err = s.store.Refresh(fetchCtx, signature, s.source.FetchAllOrders)
	} else {
		_, err = s.store.FetchAll(fetchCtx, signature, s.source.FetchAllOrders)
	}
	if err != nil && !errs.IsStaleResponse(err) {
		return err
	}
	return nil
}

// Freshness implements usecase.OrderQueueUseCase
func (s *Service) Freshness() entity.Freshness {
	return s.detector.Freshness()
}

// Acknowledge implements usecase.OrderQueueUseCase
func (s *Service) Acknowledge() {
	s.detector.Acknowledge()
}

// Close stops the freshness timer and detaches from the store
func (s *Service) Close() {
	s.unsubscribe()
	s.detector.Close()
}

// Query implements usecase.OrderQueueUseCase
func (s *Service) Query(ctx context.Context, query usecase.OrderQuery) (*usecase.OrderPage, error) {
	if !s.store.Loaded() {
		if err := s.Load(ctx); err != nil {
			return nil, err
		}
	}

	matched, counts := Select(s.store.Records(), query.Status, query.Search)

	page := query.Page
	if page == 0 {
		page = 1
	}
	totalPages := paging.TotalPages(len(matched), s.cfg.PageSize)
	if page < 1 || page > totalPages {
		return nil, fmt.Errorf("%w: page %d of %d", errs.ErrInvalidPage, page, totalPages)
	}
	orders := paging.Paginate(matched, page, s.cfg.PageSize)

	result := &usecase.OrderPage{
		Page: entity.PageInfo{
			Page:       page,
			PageSize:   s.cfg.PageSize,
			TotalPages: totalPages,
			TotalItems: len(matched),
		},
		StatusCounts: counts,
		Freshness:    s.detector.Freshness(),
	}

	if query.Viewport != nil {
		viewport := *query.Viewport
		if viewport.RowHeight == 0 {
			viewport.RowHeight = s.cfg.RowHeight
		}
		viewport.TotalRows = len(orders)
		window, err := paging.ComputeVisible(viewport)
		if err != nil {
			return nil, err
		}
		result.Window = &window
		orders = orders[window.StartIndex:window.EndIndex]
	}

	result.Rows = make([]usecase.OrderRow, len(orders))
	for i, o := range orders {
		result.Rows[i] = usecase.OrderRow{Order: o, IsNew: s.detector.IsNew(o.ID)}
	}
	return result, nil
}

// Select returns the orders matching status and search, newest first, together with
// per-status counts of the search matches so every status tab can show its size.
// An empty status matches any.
func Select(orders []entity.Order, status entity.OrderStatus, search string) ([]entity.Order, map[entity.OrderStatus]int) {
	counts := make(map[entity.OrderStatus]int)
	matched := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if !o.MatchesSearch(search) {
			continue
		}
		counts[o.Status]++
		if status == "" || o.Status == status {
			matched = append(matched, o)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, counts
}

func (s *Service) onSnapshot(snap store.Snapshot[entity.Order]) {
	s.observeMu.Lock()
	defer s.observeMu.Unlock()
	if snap.Sequence <= s.observed {
		return
	}
	s.observed = snap.Sequence
	if snap.Origin == store.OriginFetch {
		s.detector.Observe(snap.Records)
	}
}
