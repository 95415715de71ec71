package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/aggregation"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/detector"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/filter"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/paging"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/store"
)

// Dataset names the transaction snapshot in cache keys and logs
const Dataset = "transactions"

// Config tunes the dashboard engine
type Config struct {
	PageSize        int
	SearchDebounce  coreport.Duration
	FreshnessWindow coreport.Duration
	FetchTimeout    coreport.Duration
	Location        *time.Location
	Window          paging.WindowConfig
}

// DefaultConfig returns the stock engine settings
func DefaultConfig() Config {
	return Config{
		PageSize:        paging.DefaultPageSize,
		SearchDebounce:  filter.DefaultSearchDebounce,
		FreshnessWindow: detector.DefaultWindow,
		FetchTimeout:    30 * coreport.Second,
		Location:        time.UTC,
		Window:          paging.DefaultWindowConfig(),
	}
}

// Service owns the shared transaction snapshot: the record store, the change
// detector and the server-side balance sheet. Viewers read it through Query
// or through a Session.
type Service struct {
	source       persistence.TransactionSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config

	store      *store.Store[entity.Transaction]
	detector   *detector.Detector[entity.Transaction]
	engine     *filter.Engine
	aggregator *aggregation.Aggregator
	exporters  map[report.Format]report.Exporter

	sheetIssued  atomic.Uint64
	mu           sync.RWMutex
	serverSheet  *entity.BalanceSheet
	sheetApplied uint64

	observeMu sync.Mutex
	observed  uint64

	listenersMu sync.Mutex
	listeners   map[int]func()
	nextID      int

	unsubscribe func()
}

var _ usecase.DashboardUseCase = (*Service)(nil)

// NewService wires the engine around a transaction source
func NewService(
	source persistence.TransactionSource,
	cache coreport.Cache,
	exporters []report.Exporter,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = paging.DefaultPageSize
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultConfig().FetchTimeout
	}

	s := &Service{
		source:       source,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		store:        store.NewStore[entity.Transaction](Dataset, cache, timeProvider, logger),
		detector:     detector.NewDetector[entity.Transaction](Dataset, cfg.FreshnessWindow, timeProvider, logger),
		engine:       filter.NewEngine(cfg.Location),
		aggregator:   aggregation.NewAggregator(timeProvider, cfg.Location),
		exporters:    make(map[report.Format]report.Exporter, len(exporters)),
		listeners:    make(map[int]func()),
	}
	for _, e := range exporters {
		s.exporters[e.Format()] = e
	}
	s.unsubscribe = s.store.Subscribe(s.onSnapshot)
	return s
}

// Load fetches the full snapshot, served from the cache when already fetched
func (s *Service) Load(ctx context.Context) error {
	return s.load(ctx, false)
}

// Refresh invalidates the cache and fetches the full snapshot again
func (s *Service) Refresh(ctx context.Context) error {
	return s.load(ctx, true)
}

func (s *Service) load(ctx context.Context, refresh bool) error {
	fetchCtx, cancel := s.timeProvider.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	signature := store.NewSignature(Dataset)
	var err error
	if refresh {
		_, err = s.store.Refresh(fetchCtx, signature, s.source.FetchAllTransactions)
	} else {
		_, err = s.store.FetchAll(fetchCtx, signature, s.source.FetchAllTransactions)
	}
	if err != nil && !errs.IsStaleResponse(err) {
		return err
	}

	s.loadBalanceSheet(fetchCtx, refresh)
	return nil
}

// loadBalanceSheet fetches the precomputed, unfiltered balance sheet. A failure
// drops the previous one so views fall back to local recomputation.
func (s *Service) loadBalanceSheet(ctx context.Context, force bool) {
	if !force && s.ServerBalanceSheet() != nil {
		return
	}

	seq := s.sheetIssued.Add(1)
	sheet, err := s.source.FetchBalanceSheet(ctx, nil)

	s.mu.Lock()
	if seq <= s.sheetApplied {
		s.mu.Unlock()
		return
	}
	s.sheetApplied = seq
	if err != nil || sheet == nil {
		s.serverSheet = nil
	} else {
		sheet.Source = entity.SourceServer
		s.serverSheet = sheet
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("Server balance sheet unavailable, using local recomputation", map[string]any{
			"error": err.Error(),
		})
	}
	s.notify()
}

// ServerBalanceSheet returns a copy of the last server balance sheet, nil when unavailable
func (s *Service) ServerBalanceSheet() *entity.BalanceSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.serverSheet == nil {
		return nil
	}
	sheet := *s.serverSheet
	sheet.CountsByType = make(map[entity.TransactionType]int, len(s.serverSheet.CountsByType))
	for k, v := range s.serverSheet.CountsByType {
		sheet.CountsByType[k] = v
	}
	return &sheet
}

// Freshness implements usecase.DashboardUseCase
func (s *Service) Freshness() entity.Freshness {
	return s.detector.Freshness()
}

// Acknowledge implements usecase.DashboardUseCase
func (s *Service) Acknowledge() {
	s.detector.Acknowledge()
}

// Records returns the current full snapshot
func (s *Service) Records() []entity.Transaction {
	return s.store.Records()
}

// Err returns the error of the latest failed fetch, nil after a success
func (s *Service) Err() error {
	return s.store.Err()
}

// Subscribe registers fn to be called whenever the snapshot or the server balance sheet changes
func (s *Service) Subscribe(fn func()) func() {
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

// Close stops the freshness timer and detaches from the store
func (s *Service) Close() {
	s.unsubscribe()
	s.detector.Close()
}

func (s *Service) onSnapshot(snap store.Snapshot[entity.Transaction]) {
	s.observeMu.Lock()
	if snap.Sequence > s.observed {
		s.observed = snap.Sequence
		if snap.Origin == store.OriginFetch {
			s.detector.Observe(snap.Records)
		}
	}
	s.observeMu.Unlock()

	s.notify()
}

// summarize aggregates the filtered set, preferring the server balance sheet when nothing narrows it
func (s *Service) summarize(all, filtered []entity.Transaction, criteria entity.Criteria) usecase.Summary {
	result := s.aggregator.Compute(all, filtered, criteria)
	summary := usecase.Summary{
		Stats:        result.Stats,
		SalesSummary: result.SalesSummary,
		BalanceSheet: result.BalanceSheet,
	}
	if !criteria.IsActive() {
		if sheet := s.ServerBalanceSheet(); sheet != nil {
			summary.BalanceSheet = sheet
		}
	}
	return summary
}

func (s *Service) tagRows(records []entity.Transaction) []usecase.TransactionRow {
	rows := make([]usecase.TransactionRow, len(records))
	for i, tx := range records {
		rows[i] = usecase.TransactionRow{Transaction: tx, IsNew: s.detector.IsNew(tx.ID)}
	}
	return rows
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.store.Loaded() {
		return nil
	}
	return s.Load(ctx)
}

func (s *Service) notify() {
	s.listenersMu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
