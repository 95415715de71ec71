package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/database"
	coremocks "github.com/amirhossein-jamali/ledger-dashboard/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/ledger-dashboard/mocks/port/usecase"
)

var now = time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newRouter(t *testing.T, dashboard usecase.DashboardUseCase, queue usecase.OrderQueueUseCase) *gin.Engine {
	logger := quietLogger(t)
	router := gin.New()
	th := NewTransactionHandler(dashboard, logger)
	oh := NewOrderHandler(queue, logger)

	router.GET("/transactions", th.List)
	router.GET("/transactions/stats", th.Stats)
	router.GET("/transactions/sales-summary", th.SalesSummary)
	router.GET("/transactions/balance-sheet", th.BalanceSheet)
	router.GET("/transactions/export", th.Export)
	router.POST("/transactions/refresh", th.Refresh)
	router.POST("/transactions/freshness/ack", th.Acknowledge)
	router.GET("/orders/queue", oh.Queue)
	router.POST("/orders/refresh", oh.Refresh)
	router.GET("/orders/freshness", oh.Freshness)
	return router
}

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sampleSummary() *usecase.Summary {
	sheet := entity.NewBalanceSheet(entity.SourceLocal)
	sheet.TotalRevenue = decimal.NewFromInt(75)
	sheet.OrderCount = 3
	sheet.CountsByType[entity.TypeOrder] = 3
	return &usecase.Summary{
		Stats: entity.Stats{
			TotalTransactions: 3,
			TotalCredits:      decimal.Zero,
			TotalDebits:       decimal.NewFromInt(-75),
			NetBalance:        decimal.NewFromInt(-75),
		},
		SalesSummary: []entity.UserSalesSummary{},
		BalanceSheet: sheet,
	}
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("should pass filters, page and viewport through", func(t *testing.T) {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		criteria := entity.Criteria{Search: "alice", Type: entity.TypeOrder}
		dashboard.EXPECT().ParseCriteria("alice", "order", "", "2024-01-01", "").Return(criteria, nil).Once()
		dashboard.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q usecase.TransactionQuery) bool {
			return q.Criteria == criteria && q.Page == 2 && q.Viewport != nil &&
				q.Viewport.ContainerHeight == 480 && q.Viewport.ScrollTop == 96 && !q.Remote
		})).Return(&usecase.TransactionPage{
			Page: entity.PageInfo{Page: 2, PageSize: 1, TotalPages: 2, TotalItems: 2},
			Rows: []usecase.TransactionRow{{
				Transaction: entity.Transaction{
					ID:          "tx-1",
					Type:        entity.TypeOrder,
					Amount:      decimal.RequireFromString("-25.5"),
					AmountValid: true,
					Balance:     decimal.NewFromInt(100),
					User:        entity.NewUserRef("Alice"),
					CreatedAt:   now,
				},
				IsNew: true,
			}},
			Window:       &entity.VisibleRange{StartIndex: 0, EndIndex: 1, TotalHeight: 48},
			Summary:      *sampleSummary(),
			SnapshotSize: 10,
		}, nil).Once()
		router := newRouter(t, dashboard, nil)

		w := serve(router, http.MethodGet, "/transactions?search=alice&type=order&start=2024-01-01&page=2&scrollTop=96&containerHeight=480")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.TransactionListResponse](t, w)
		require.Len(t, body.Rows, 1)
		assert.Equal(t, "-25.50", body.Rows[0].Amount)
		assert.Equal(t, "Alice", body.Rows[0].UserName)
		assert.True(t, body.Rows[0].IsNew)
		assert.Equal(t, 2, body.Page.Page)
		require.NotNil(t, body.Window)
		assert.Equal(t, 48.0, body.Window.TotalHeight)
		assert.Equal(t, "25.00", body.Summary.BalanceSheet.AverageOrderValue)
		assert.Equal(t, dto.NotApplicable, body.Summary.BalanceSheet.SuccessRate)
		assert.NotNil(t, body.Summary.SalesSummary)
	})

	t.Run("should leave the viewport out without a container height", func(t *testing.T) {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		dashboard.EXPECT().ParseCriteria("", "", "", "", "").Return(entity.Criteria{}, nil).Once()
		dashboard.EXPECT().Query(mock.Anything, mock.MatchedBy(func(q usecase.TransactionQuery) bool {
			return q.Viewport == nil && q.Page == 0
		})).Return(&usecase.TransactionPage{Page: entity.PageInfo{Page: 1, PageSize: 500, TotalPages: 1}}, nil).Once()

		w := serve(newRouter(t, dashboard, nil), http.MethodGet, "/transactions")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.TransactionListResponse](t, w)
		assert.NotNil(t, body.Rows)
		assert.Nil(t, body.Window)
	})

	t.Run("should reject invalid criteria", func(t *testing.T) {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		dashboard.EXPECT().ParseCriteria("", "", "", "2024-02-01", "2024-01-01").
			Return(entity.Criteria{}, errs.ErrInvalidDateRange).Once()

		w := serve(newRouter(t, dashboard, nil), http.MethodGet, "/transactions?start=2024-02-01&end=2024-01-01")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, errs.ErrorCode(errs.ErrInvalidDateRange), body.Code)
	})

	t.Run("should reject a page below one", func(t *testing.T) {
		w := serve(newRouter(t, usecasemocks.NewMockDashboardUseCase(t), nil), http.MethodGet, "/transactions?page=-1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should report an out of range page", func(t *testing.T) {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		dashboard.EXPECT().ParseCriteria("", "", "", "", "").Return(entity.Criteria{}, nil).Once()
		dashboard.EXPECT().Query(mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidPage).Once()

		w := serve(newRouter(t, dashboard, nil), http.MethodGet, "/transactions?page=9")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should hide fetch failures behind a gateway error", func(t *testing.T) {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		dashboard.EXPECT().ParseCriteria("", "", "", "", "").Return(entity.Criteria{}, nil).Once()
		dashboard.EXPECT().Query(mock.Anything, mock.Anything).
			Return(nil, errs.NewFetchError("transactions", "transactions", 1, errors.New("dial tcp"))).Once()

		w := serve(newRouter(t, dashboard, nil), http.MethodGet, "/transactions")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		body := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, http.StatusText(http.StatusBadGateway), body.Message)
	})
}

func TestTransactionHandler_Aggregates(t *testing.T) {
	newDashboard := func(t *testing.T) *usecasemocks.MockDashboardUseCase {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		dashboard.EXPECT().ParseCriteria("bob", "", "credit", "", "").Return(entity.Criteria{Search: "bob"}, nil).Once()
		dashboard.EXPECT().Summarize(mock.Anything, entity.Criteria{Search: "bob"}).Return(sampleSummary(), nil).Once()
		return dashboard
	}

	t.Run("stats", func(t *testing.T) {
		w := serve(newRouter(t, newDashboard(t), nil), http.MethodGet, "/transactions/stats?search=bob&sign=credit")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.StatsResponse](t, w)
		assert.Equal(t, 3, body.TotalTransactions)
		assert.Equal(t, "-75.00", body.NetBalance)
	})

	t.Run("sales summary", func(t *testing.T) {
		w := serve(newRouter(t, newDashboard(t), nil), http.MethodGet, "/transactions/sales-summary?search=bob&sign=credit")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("balance sheet", func(t *testing.T) {
		w := serve(newRouter(t, newDashboard(t), nil), http.MethodGet, "/transactions/balance-sheet?search=bob&sign=credit")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.BalanceSheetResponse](t, w)
		assert.Equal(t, "75.00", body.TotalRevenue)
		assert.Equal(t, 3, body.CountsByType["ORDER"])
		assert.Equal(t, "local", body.Source)
	})
}

func TestTransactionHandler_Export(t *testing.T) {
	t.Run("should serve the rendered file", func(t *testing.T) {
		dashboard := usecasemocks.NewMockDashboardUseCase(t)
		dashboard.EXPECT().ParseCriteria("", "", "", "", "").Return(entity.Criteria{}, nil).Once()
		dashboard.EXPECT().Export(mock.Anything, usecase.ExportRequest{
			Shape:  report.ShapeSalesSummary,
			Format: report.FormatCSV,
		}).Return(&usecase.ExportFile{
			FileName:    "sales-summary-20240106-abcd1234.csv",
			ContentType: "text/csv; charset=utf-8",
			Content:     []byte("User,Total Sales\n"),
		}, nil).Once()

		w := serve(newRouter(t, dashboard, nil), http.MethodGet, "/transactions/export?shape=sales-summary")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "sales-summary-20240106-abcd1234.csv")
		assert.Equal(t, "User,Total Sales\n", w.Body.String())
	})

	t.Run("should reject unknown shapes and formats", func(t *testing.T) {
		router := newRouter(t, usecasemocks.NewMockDashboardUseCase(t), nil)

		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/transactions/export?shape=pie").Code)
		assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/transactions/export?format=pdf").Code)
	})
}

func TestTransactionHandler_Freshness(t *testing.T) {
	dashboard := usecasemocks.NewMockDashboardUseCase(t)
	dashboard.EXPECT().Refresh(mock.Anything).Return(nil).Once()
	dashboard.EXPECT().Freshness().Return(entity.Freshness{HasNew: true, Count: 2, ExpiresAt: now.Add(30 * time.Second)}).Once()
	dashboard.EXPECT().Acknowledge().Return().Once()
	router := newRouter(t, dashboard, nil)

	w := serve(router, http.MethodPost, "/transactions/refresh")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.FreshnessResponse](t, w)
	assert.True(t, body.HasNew)
	assert.Equal(t, 2, body.Count)
	require.NotNil(t, body.ExpiresAt)

	w = serve(router, http.MethodPost, "/transactions/freshness/ack")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestOrderHandler(t *testing.T) {
	t.Run("should query the queue by status", func(t *testing.T) {
		queue := usecasemocks.NewMockOrderQueueUseCase(t)
		queue.EXPECT().Query(mock.Anything, usecase.OrderQuery{Status: entity.OrderPending, Search: "0241"}).
			Return(&usecase.OrderPage{
				Page: entity.PageInfo{Page: 1, PageSize: 500, TotalPages: 1, TotalItems: 1},
				Rows: []usecase.OrderRow{{
					Order: entity.Order{
						ID:        "1",
						Reference: "REF-1",
						User:      entity.NewUserRef("Alice"),
						Bundle:    "5GB",
						Recipient: "0241111111",
						Network:   "MTN",
						Amount:    decimal.NewFromInt(25),
						Status:    entity.OrderPending,
						CreatedAt: now,
					},
				}},
				StatusCounts: map[entity.OrderStatus]int{entity.OrderPending: 1, entity.OrderFailed: 2},
			}, nil).Once()

		w := serve(newRouter(t, nil, queue), http.MethodGet, "/orders/queue?status=pending&search=0241")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.OrderQueueResponse](t, w)
		require.Len(t, body.Rows, 1)
		assert.Equal(t, "25.00", body.Rows[0].Amount)
		assert.Equal(t, "Alice", body.Rows[0].UserName)
		assert.Equal(t, 2, body.StatusCounts["FAILED"])
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		w := serve(newRouter(t, nil, usecasemocks.NewMockOrderQueueUseCase(t)), http.MethodGet, "/orders/queue?status=shipped")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should surface refresh failures", func(t *testing.T) {
		queue := usecasemocks.NewMockOrderQueueUseCase(t)
		queue.EXPECT().Refresh(mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		w := serve(newRouter(t, nil, queue), http.MethodPost, "/orders/refresh")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("should report freshness", func(t *testing.T) {
		queue := usecasemocks.NewMockOrderQueueUseCase(t)
		queue.EXPECT().Freshness().Return(entity.Freshness{}).Once()

		w := serve(newRouter(t, nil, queue), http.MethodGet, "/orders/freshness")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hasNew":false,"count":0}`, w.Body.String())
	})
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakePool struct{ fakePinger }

func (fakePool) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 4, InUse: 3, IdleConnections: 1, MaxOpenConnections: 10}
}

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	router.GET("/up", NewHealthHandler(fakePinger{}, quietLogger(t)).Health)
	router.GET("/down", NewHealthHandler(fakePinger{err: errors.New("refused")}, quietLogger(t)).Health)
	router.GET("/pool", NewHealthHandler(fakePool{}, quietLogger(t)).Health)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/up").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodGet, "/down").Code)

	w := serve(router, http.MethodGet, "/pool")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, map[string]any{"open": 4.0, "inUse": 3.0, "idle": 1.0, "maxOpen": 10.0}, body["pool"])
}
