package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mamadbah2/agroboard/internal/domain/models"
	"github.com/mamadbah2/agroboard/internal/server/handlers"
	subscriptionsvc "github.com/mamadbah2/agroboard/internal/service/subscription"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Farms        *handlers.FarmHandler
	Inventory    *handlers.InventoryHandler
	Fleet        *handlers.FleetHandler
	Herd         *handlers.HerdHandler
	Staff        *handlers.StaffHandler
	Subscription *handlers.SubscriptionHandler
	Advisory     *handlers.AdvisoryHandler
	Documents    *handlers.DocumentsHandler
	Sync         *handlers.SyncHandler
}

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agroboard_http_requests_total",
		Help: "HTTP requests processed, by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agroboard_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, subs *subscriptionsvc.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(metricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	farms := api.Group("/farms")
	{
		farms.GET("", h.Farms.List)
		farms.POST("", h.Farms.Upsert)
		farms.DELETE("/:id", h.Farms.Delete)
		farms.POST("/:id/sales", h.Farms.RecordSale)
		farms.POST("/:id/expenses", h.Farms.RecordExpense)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Upsert)
		inventory.DELETE("/:id", h.Inventory.Delete)
		inventory.POST("/:id/usage", h.Inventory.RecordUsage)
	}

	machines := api.Group("/machines")
	{
		machines.GET("", h.Fleet.List)
		machines.POST("", h.Fleet.Upsert)
		machines.DELETE("/:id", h.Fleet.Delete)
		machines.POST("/:id/usage-reports", h.Fleet.RecordUsageReport)
		machines.POST("/:id/expenses", h.Fleet.RecordExpense)
	}

	herd := api.Group("/herd-lots")
	{
		herd.GET("", h.Herd.List)
		herd.POST("", h.Herd.Upsert)
		herd.DELETE("/:id", h.Herd.Delete)
	}

	staff := api.Group("/collaborators")
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Upsert)
		staff.DELETE("/:id", h.Staff.Delete)
		staff.POST("/:id/payments", h.Staff.RecordPayment)
	}

	api.GET("/subscription", h.Subscription.Get)
	api.PUT("/subscription", h.Subscription.Update)

	advisory := api.Group("/advisory", requirePlan(subs, models.PlanProfessional))
	{
		advisory.POST("/agents/:agent/chat", h.Advisory.Chat)
		advisory.GET("/agents/:agent/history", h.Advisory.History)
		advisory.GET("/quotes", h.Advisory.Quotes)
		advisory.GET("/forecast", h.Advisory.Forecast)
	}

	api.GET("/documents", requirePlan(subs, models.PlanPremium), h.Documents.List)

	api.POST("/sync", h.Sync.Pull)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// requirePlan rejects requests from accounts below the minimum plan tier.
func requirePlan(subs *subscriptionsvc.Service, min models.PlanTier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !subs.Allows(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "plan upgrade required",
				"required_plan": string(min),
			})
			return
		}
		c.Next()
	}
}
