package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cateringapp "github.com/gsc/backend/internal/application/catering"
	"github.com/gsc/backend/internal/domain/shared"
	"github.com/gsc/backend/internal/infrastructure/config"
	"github.com/gsc/backend/internal/infrastructure/event"
	"github.com/gsc/backend/internal/infrastructure/logger"
	"github.com/gsc/backend/internal/infrastructure/persistence"
	"github.com/gsc/backend/internal/infrastructure/telemetry"
	"github.com/gsc/backend/internal/interfaces/http/handler"
	"github.com/gsc/backend/internal/interfaces/http/middleware"
	"github.com/gsc/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Catering Back Office API
//	@version		1.0
//	@description	Airline catering back office - forecast orders, delivery validation and discrepancy follow-up

//	@contact.name	API Support
//	@contact.url	https://github.com/gsc/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting catering back office",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Bridge application logs to the OTEL Collector when telemetry is enabled
	logsProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Warn("Failed to initialize OTEL logs provider", zap.Error(err))
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := logsProvider.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down logs provider", zap.Error(err))
			}
		}()
		if logsProvider.IsEnabled() {
			otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
				ServiceName:    cfg.Telemetry.ServiceName,
				LoggerProvider: logsProvider,
			})
			log = telemetry.NewBridgedLogger(log.Core(), otelCore, zap.AddCaller())
			log.Info("OTEL logs bridge enabled")
		}
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Register database tracing callbacks when telemetry is enabled
	dbTracingCfg := telemetry.DefaultDBTracingConfig()
	dbTracingCfg.Enabled = cfg.Telemetry.Enabled
	dbTracing := telemetry.NewDBTracingPlugin(dbTracingCfg, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Warn("Failed to register database tracing", zap.Error(err))
	}

	// Initialize repositories
	articleRepo := persistence.NewGormArticleRepository(db.DB)
	flightRepo := persistence.NewGormFlightRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	deliveryRepo := persistence.NewGormDeliveryRepository(db.DB)
	discrepancyRepo := persistence.NewGormDiscrepancyRepository(db.DB)
	budgetReportRepo := persistence.NewGormBudgetReportRepository(db.DB)

	// Initialize application services
	clock := shared.SystemClock{}
	articleService := cateringapp.NewArticleService(articleRepo)
	flightService := cateringapp.NewFlightService(flightRepo)
	purchaseOrderService := cateringapp.NewPurchaseOrderService(purchaseOrderRepo, flightRepo, articleRepo)
	deliveryService := cateringapp.NewDeliveryService(deliveryRepo, purchaseOrderRepo, flightRepo, articleRepo, clock)
	discrepancyService := cateringapp.NewDiscrepancyService(discrepancyRepo, clock)
	budgetReportService := cateringapp.NewBudgetReportService(budgetReportRepo)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Delivery validated -> flag validations needing purchasing follow-up
	deliveryValidatedHandler := cateringapp.NewDeliveryValidatedHandler(discrepancyRepo, log)
	eventBus.Subscribe(deliveryValidatedHandler)

	log.Info("Event handlers registered",
		zap.Strings("delivery_validated_events", deliveryValidatedHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	purchaseOrderService.SetEventPublisher(eventBus)
	deliveryService.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	articleHandler := handler.NewArticleHandler(articleService)
	flightHandler := handler.NewFlightHandler(flightService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	discrepancyHandler := handler.NewDiscrepancyHandler(discrepancyService)
	reportHandler := handler.NewReportHandler(budgetReportService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - OpenTelemetry spans (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
	}
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catering domain routes
	cateringRoutes := router.NewDomainGroup("catering", "/catering")
	cateringRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "catering service ready"})
	})

	// Article catalog routes
	cateringRoutes.POST("/articles", articleHandler.Create)
	cateringRoutes.GET("/articles", articleHandler.List)
	cateringRoutes.GET("/articles/:id", articleHandler.GetByID)
	cateringRoutes.PUT("/articles/:id", articleHandler.Update)
	cateringRoutes.POST("/articles/:id/activate", articleHandler.Activate)
	cateringRoutes.POST("/articles/:id/deactivate", articleHandler.Deactivate)

	// Flight routes
	cateringRoutes.POST("/flights", flightHandler.Create)
	cateringRoutes.GET("/flights", flightHandler.List)
	cateringRoutes.GET("/flights/departures", flightHandler.ListDepartures)
	cateringRoutes.GET("/flights/:id", flightHandler.GetByID)
	cateringRoutes.PUT("/flights/:id/schedule", flightHandler.UpdateSchedule)
	cateringRoutes.DELETE("/flights/:id", flightHandler.Delete)

	// Forecast purchase order routes
	cateringRoutes.POST("/purchase-orders", purchaseOrderHandler.Create)
	cateringRoutes.GET("/purchase-orders", purchaseOrderHandler.List)
	cateringRoutes.GET("/purchase-orders/stats/summary", purchaseOrderHandler.GetStatusSummary)
	cateringRoutes.GET("/purchase-orders/number/:order_number", purchaseOrderHandler.GetByOrderNumber)
	cateringRoutes.GET("/purchase-orders/:id", purchaseOrderHandler.GetByID)
	cateringRoutes.DELETE("/purchase-orders/:id", purchaseOrderHandler.Delete)
	cateringRoutes.POST("/purchase-orders/:id/lines", purchaseOrderHandler.AddLine)
	cateringRoutes.DELETE("/purchase-orders/:id/lines/:line_id", purchaseOrderHandler.RemoveLine)
	cateringRoutes.POST("/purchase-orders/:id/send", purchaseOrderHandler.Send)
	cateringRoutes.POST("/purchase-orders/:id/confirm", purchaseOrderHandler.Confirm)
	cateringRoutes.POST("/purchase-orders/:id/cancel", purchaseOrderHandler.Cancel)

	// Delivery note routes
	cateringRoutes.POST("/deliveries", deliveryHandler.Create)
	cateringRoutes.GET("/deliveries", deliveryHandler.List)
	cateringRoutes.GET("/deliveries/:id", deliveryHandler.GetByID)
	cateringRoutes.DELETE("/deliveries/:id", deliveryHandler.Delete)
	cateringRoutes.POST("/deliveries/:id/receive", deliveryHandler.Receive)
	cateringRoutes.POST("/deliveries/:id/validate", deliveryHandler.Validate)
	cateringRoutes.POST("/deliveries/:id/reject", deliveryHandler.Reject)
	cateringRoutes.GET("/deliveries/:id/discrepancies", discrepancyHandler.ListByDelivery)

	// Discrepancy workflow routes
	cateringRoutes.GET("/discrepancies", discrepancyHandler.List)
	cateringRoutes.GET("/discrepancies/stats/by-kind", discrepancyHandler.CountByKind)
	cateringRoutes.GET("/discrepancies/:id", discrepancyHandler.GetByID)
	cateringRoutes.POST("/discrepancies/:id/start", discrepancyHandler.Start)
	cateringRoutes.POST("/discrepancies/:id/resolve", discrepancyHandler.Resolve)
	cateringRoutes.POST("/discrepancies/:id/accept", discrepancyHandler.Accept)
	cateringRoutes.POST("/discrepancies/:id/reject", discrepancyHandler.Reject)

	// Budget report routes
	cateringRoutes.GET("/reports/budget", reportHandler.GetBudgetStatistics)

	r.Register(cateringRoutes)

	// Register system routes
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
