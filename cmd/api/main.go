package main

import (
	"os"

	"github.com/arunvel/kadai-api/internal/application/service"
	"github.com/arunvel/kadai-api/internal/config"
	"github.com/arunvel/kadai-api/internal/domain/enum"
	"github.com/arunvel/kadai-api/internal/infrastructure/cache"
	"github.com/arunvel/kadai-api/internal/infrastructure/database"
	"github.com/arunvel/kadai-api/internal/infrastructure/repository"
	"github.com/arunvel/kadai-api/internal/presentation/http/handler"
	"github.com/arunvel/kadai-api/internal/presentation/http/routes"
	"github.com/arunvel/kadai-api/pkg/printer"
	"github.com/arunvel/kadai-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logging; JSON in production so log shippers can parse it
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if cfg.App.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.SetOutput(os.Stdout)

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Dashboard cache; the API works without Redis, every read just misses
	var statsCache cache.Cache
	if cfg.Redis.Addr != "" {
		statsCache, err = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warnf("Redis unavailable, dashboard caching disabled: %v", err)
			statsCache = cache.NewNoopCache()
		}
	} else {
		statsCache = cache.NewNoopCache()
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vegetableRepo := repository.NewVegetableRepository(db)
	billRepo := repository.NewBillRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warnf("Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, vegetableRepo, jwtManager)
	catalogService := service.NewCatalogService(vegetableRepo)
	billingService := service.NewBillingService(billRepo, vegetableRepo, customerRepo, analyticsRepo)
	draftService := service.NewDraftService(
		vegetableRepo,
		customerRepo,
		billingService,
		cfg.Billing.TaxRate(),
		enum.BillingMode(cfg.Billing.DefaultMode),
	)
	customerService := service.NewCustomerService(customerRepo, billRepo, analyticsRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, statsCache)
	receiptService := service.NewReceiptService(thermalPrinter, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Draft:     handler.NewDraftHandler(draftService, dashboardService),
		Billing:   handler.NewBillingHandler(billingService, receiptService),
		Customer:  handler.NewCustomerHandler(customerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Infof("Starting %s server on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
