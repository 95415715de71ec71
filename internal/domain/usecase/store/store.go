package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// Fetcher retrieves a snapshot from a collaborator
type Fetcher[T entity.Record] func(ctx context.Context) ([]T, error)

// Origin tells how a snapshot reached the store
type Origin int

const (
	// OriginFetch is a full dataset retrieval
	OriginFetch Origin = iota
	// OriginCache is a full dataset served from the cache
	OriginCache
	// OriginSearch is a server-narrowed retrieval
	OriginSearch
)

// String returns the name of the origin
func (o Origin) String() string {
	switch o {
	case OriginFetch:
		return "fetch"
	case OriginCache:
		return "cache"
	case OriginSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Snapshot is the state published to subscribers after every applied response
type Snapshot[T entity.Record] struct {
	Records   []T
	Signature string
	Sequence  uint64
	Origin    Origin
	AppliedAt time.Time
}

// NewSignature composes a cache key from a dataset name and optional query parts
func NewSignature(dataset string, parts ...string) string {
	if len(parts) == 0 {
		return dataset + ":all"
	}
	return dataset + ":" + strings.Join(parts, ":")
}

// Store holds the last applied snapshot of a dataset. Every fetch is tagged with a
// sequence number; a response is applied only when its number is higher than the
// last applied one, so a slow response never overwrites a newer one.
type Store[T entity.Record] struct {
	dataset      string
	cache        coreport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	issued atomic.Uint64

	mu        sync.RWMutex
	applied   uint64
	records   []T
	signature string
	origin    Origin
	appliedAt time.Time
	lastErr   error
	cached    map[string]struct{}

	listenersMu sync.Mutex
	listeners   map[int]func(Snapshot[T])
	nextID      int
}

// NewStore creates a store for a dataset. A nil cache disables caching.
func NewStore[T entity.Record](
	dataset string,
	cache coreport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Store[T] {
	return &Store[T]{
		dataset:      dataset,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
		cached:       make(map[string]struct{}),
		listeners:    make(map[int]func(Snapshot[T])),
	}
}

// FetchAll returns the snapshot for signature, from the cache when present and
// from fetcher otherwise. applied is false when a newer response won the race.
func (s *Store[T]) FetchAll(ctx context.Context, signature string, fetcher Fetcher[T]) (bool, error) {
	seq := s.issued.Add(1)

	if s.cache != nil {
		if cached, ok := s.cache.Get(signature); ok {
			if records, ok := cached.([]T); ok {
				return s.apply(seq, signature, OriginCache, records)
			}
			s.cache.Delete(signature)
		}
	}

	records, err := fetcher(ctx)
	if err != nil {
		return false, s.fail(seq, signature, err)
	}
	return s.apply(seq, signature, OriginFetch, records)
}

// Search replaces the store contents with a server-narrowed result. It never
// reads or writes the cache since the result is query specific.
func (s *Store[T]) Search(ctx context.Context, signature string, fetcher Fetcher[T]) (bool, error) {
	seq := s.issued.Add(1)

	records, err := fetcher(ctx)
	if err != nil {
		return false, s.fail(seq, signature, err)
	}
	return s.apply(seq, signature, OriginSearch, records)
}

// Invalidate drops the snapshots this store cached. Entries written by anything
// else sharing the cache are left alone. The current contents stay visible.
func (s *Store[T]) Invalidate() {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	keys := s.cached
	s.cached = make(map[string]struct{})
	s.mu.Unlock()

	for key := range keys {
		s.cache.Delete(key)
	}
	s.logger.Debug("Snapshot cache invalidated", map[string]any{
		"dataset": s.dataset,
		"entries": len(keys),
	})
}

// Refresh invalidates the cache and fetches signature again
func (s *Store[T]) Refresh(ctx context.Context, signature string, fetcher Fetcher[T]) (bool, error) {
	s.Invalidate()
	return s.FetchAll(ctx, signature, fetcher)
}

// Records returns the current contents. The slice is replaced, never mutated,
// on every applied snapshot, so callers must treat it as read-only.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Snapshot returns the current contents with their metadata
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Loaded reports whether any snapshot was applied yet
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied > 0
}

// Err returns the error of the latest non-stale fetch, nil after a success
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Subscribe registers fn to be called after every applied snapshot.
// The returned function removes the subscription.
func (s *Store[T]) Subscribe(fn func(Snapshot[T])) func() {
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

func (s *Store[T]) apply(seq uint64, signature string, origin Origin, records []T) (bool, error) {
	if records == nil {
		records = []T{}
	}

	s.mu.Lock()
	if seq <= s.applied {
		latest := s.applied
		s.mu.Unlock()
		s.logger.Debug("Discarding stale response", map[string]any{
			"dataset":   s.dataset,
			"signature": signature,
			"sequence":  seq,
			"applied":   latest,
		})
		return false, fmt.Errorf("request #%d: %w", seq, errs.ErrStaleResponse)
	}

	s.applied = seq
	s.records = records
	s.signature = signature
	s.origin = origin
	s.appliedAt = s.timeProvider.Now()
	s.lastErr = nil
	if s.cache != nil && origin == OriginFetch {
		s.cache.Set(signature, records)
		s.cached[signature] = struct{}{}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("Snapshot applied", map[string]any{
		"dataset":   s.dataset,
		"signature": signature,
		"sequence":  seq,
		"records":   len(records),
		"origin":    origin.String(),
	})

	s.notify(snapshot)
	return true, nil
}

func (s *Store[T]) fail(seq uint64, signature string, cause error) error {
	s.mu.Lock()
	if seq <= s.applied {
		s.mu.Unlock()
		s.logger.Debug("Discarding stale failure", map[string]any{
			"dataset":  s.dataset,
			"sequence": seq,
			"error":    cause.Error(),
		})
		return fmt.Errorf("request #%d: %w", seq, errs.ErrStaleResponse)
	}
	fetchErr := &errs.FetchError{Dataset: s.dataset, Signature: signature, Sequence: seq, Err: cause}
	s.lastErr = fetchErr
	s.mu.Unlock()

	s.logger.Error("Snapshot fetch failed, keeping previous snapshot", fetchErr.LogFields())
	return fetchErr
}

func (s *Store[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Records:   s.records,
		Signature: s.signature,
		Sequence:  s.applied,
		Origin:    s.origin,
		AppliedAt: s.appliedAt,
	}
}

func (s *Store[T]) notify(snapshot Snapshot[T]) {
	s.listenersMu.Lock()
	listeners := make([]func(Snapshot[T]), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
