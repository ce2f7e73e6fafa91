package routes

import (
	"time"

	"github.com/arunvel/kadai-api/internal/config"
	domainRepo "github.com/arunvel/kadai-api/internal/domain/repository"
	"github.com/arunvel/kadai-api/internal/presentation/http/handler"
	"github.com/arunvel/kadai-api/internal/presentation/http/middleware"
	"github.com/arunvel/kadai-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Draft     *handler.DraftHandler
	Billing   *handler.BillingHandler
	Customer  *handler.CustomerHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard/stats", h.Dashboard.Stats)

	registerCatalogRoutes(protected, h)
	registerDraftRoutes(protected, h, deps)
	registerBillRoutes(protected, h)
	registerCustomerRoutes(protected, h)
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	vegetables := protected.Group("/vegetables")
	{
		vegetables.GET("", h.Catalog.List)
		vegetables.GET("/search", h.Catalog.Search)
		vegetables.POST("", h.Catalog.Create)
		vegetables.POST("/bulk-sync", h.Catalog.BulkSync)
		vegetables.GET("/:id", h.Catalog.Get)
		vegetables.PUT("/:id", h.Catalog.Update)
		vegetables.DELETE("/:id", h.Catalog.Delete)
	}
}

func registerDraftRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	draft := protected.Group("/draft")
	{
		draft.GET("", h.Draft.Get)
		draft.DELETE("", h.Draft.Clear)
		draft.PUT("/search-term", h.Draft.SetSearchTerm)
		draft.POST("/items", h.Draft.AddItem)
		draft.PATCH("/items/:id", h.Draft.EditLine)
		draft.POST("/items/:id/step", h.Draft.StepQuantity)
		draft.DELETE("/items/:id", h.Draft.RemoveItem)
		draft.PUT("/discount", h.Draft.SetDiscount)
		draft.PUT("/mode", h.Draft.SetBillingMode)
		draft.PUT("/customer", h.Draft.SetCustomer)
		// Submission requires an idempotency key so a retried request
		// cannot create a duplicate bill
		draft.POST("/submit", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Draft.Submit)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers) {
	bills := protected.Group("/bills")
	{
		bills.GET("", h.Billing.History)
		bills.GET("/cursor", h.Billing.HistoryCursor)
		bills.GET("/export", h.Billing.Export)
		bills.GET("/:id", h.Billing.Get)
		bills.GET("/:id/receipt", h.Billing.Receipt)
		bills.POST("/:id/print", h.Billing.Print)
	}

	protected.GET("/printer/status", h.Billing.PrinterStatus)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:mobile", h.Customer.Lookup)
		customers.GET("/:mobile/stats", h.Customer.Stats)
		customers.GET("/:mobile/bills", h.Customer.Bills)
	}
}
