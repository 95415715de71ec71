package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/middleware"
)

// RateLimitConfig enables per-client throttling of the API routes
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
	Store             middleware.LimiterStore
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	orderHandler *handler.OrderHandler,
	healthHandler *handler.HealthHandler,
	rateLimit RateLimitConfig,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api/v1")
	if rateLimit.Enabled && rateLimit.Store != nil {
		api.Use(middleware.RateLimit(rateLimit.Store, rateLimit.RequestsPerSecond, rateLimit.Burst, logger))
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", transactionHandler.List)
		transactions.GET("/stats", transactionHandler.Stats)
		transactions.GET("/sales-summary", transactionHandler.SalesSummary)
		transactions.GET("/balance-sheet", transactionHandler.BalanceSheet)
		transactions.GET("/export", transactionHandler.Export)
		transactions.POST("/refresh", transactionHandler.Refresh)
		transactions.GET("/freshness", transactionHandler.Freshness)
		transactions.POST("/freshness/ack", transactionHandler.Acknowledge)
	}

	orders := api.Group("/orders")
	{
		orders.GET("/queue", orderHandler.Queue)
		orders.POST("/refresh", orderHandler.Refresh)
		orders.GET("/freshness", orderHandler.Freshness)
		orders.POST("/freshness/ack", orderHandler.Acknowledge)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
