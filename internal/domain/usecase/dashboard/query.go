package dashboard

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/paging"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/store"
)

// ParseCriteria implements usecase.DashboardUseCase
func (s *Service) ParseCriteria(search, txType, sign, start, end string) (entity.Criteria, error) {
	return s.engine.ParseCriteria(search, txType, sign, start, end)
}

// Query implements usecase.DashboardUseCase
func (s *Service) Query(ctx context.Context, query usecase.TransactionQuery) (*usecase.TransactionPage, error) {
	all, filtered, err := s.filtered(ctx, query.Criteria, query.Remote)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page == 0 {
		page = 1
	}
	totalPages := paging.TotalPages(len(filtered), s.cfg.PageSize)
	if page < 1 || page > totalPages {
		return nil, fmt.Errorf("%w: page %d of %d", errs.ErrInvalidPage, page, totalPages)
	}

	rows := paging.Paginate(filtered, page, s.cfg.PageSize)
	result := &usecase.TransactionPage{
		Page: entity.PageInfo{
			Page:       page,
			PageSize:   s.cfg.PageSize,
			TotalPages: totalPages,
			TotalItems: len(filtered),
		},
		Summary:      s.summarize(all, filtered, query.Criteria),
		Freshness:    s.detector.Freshness(),
		SnapshotSize: len(all),
	}

	if query.Viewport != nil {
		window, err := s.window(*query.Viewport, len(rows))
		if err != nil {
			return nil, err
		}
		result.Window = &window
		rows = rows[window.StartIndex:window.EndIndex]
	}
	result.Rows = s.tagRows(rows)

	return result, nil
}

// Summarize implements usecase.DashboardUseCase
func (s *Service) Summarize(ctx context.Context, criteria entity.Criteria) (*usecase.Summary, error) {
	all, filtered, err := s.filtered(ctx, criteria, false)
	if err != nil {
		return nil, err
	}
	summary := s.summarize(all, filtered, criteria)
	return &summary, nil
}

// filtered returns the full snapshot and the subset matching criteria. With remote set
// the search term is narrowed by the source and the snapshot itself is left untouched.
func (s *Service) filtered(ctx context.Context, criteria entity.Criteria, remote bool) ([]entity.Transaction, []entity.Transaction, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, nil, err
	}
	all := s.store.Records()
	if !remote || !criteria.HasSearch() {
		return all, s.engine.Apply(all, criteria), nil
	}

	fetchCtx, cancel := s.timeProvider.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	found, err := s.source.SearchTransactions(fetchCtx, criteria.Search, criteria)
	if err != nil {
		signature := store.NewSignature(Dataset, "search", criteria.Search)
		fetchErr := errs.NewFetchError(Dataset, signature, 0, err)
		s.logger.Error("Remote transaction search failed", map[string]any{
			"signature": signature,
			"error":     err.Error(),
		})
		return nil, nil, fetchErr
	}
	return all, s.engine.Apply(found, criteria), nil
}

// window fills a missing row height from the configuration and computes the visible range of a page
func (s *Service) window(viewport entity.Viewport, pageRows int) (entity.VisibleRange, error) {
	if viewport.RowHeight == 0 {
		viewport.RowHeight = s.cfg.Window.RowHeight
	}
	viewport.TotalRows = pageRows
	return paging.ComputeVisible(viewport)
}
