package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appsync "github.com/erp/partysync/internal/application/sync"
	"github.com/erp/partysync/internal/infrastructure/cache"
	"github.com/erp/partysync/internal/infrastructure/config"
	"github.com/erp/partysync/internal/infrastructure/ecommerce"
	"github.com/erp/partysync/internal/infrastructure/logger"
	"github.com/erp/partysync/internal/infrastructure/persistence"
	"github.com/erp/partysync/internal/interfaces/http/handler"
	"github.com/erp/partysync/internal/interfaces/http/middleware"
	"github.com/erp/partysync/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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

	log.Info("Starting Party Sync",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

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

	// Initialize repositories and lookups
	channelRepo := persistence.NewGormChannelRepository(db.DB)
	countryLookup := persistence.NewGormCountryLookup(db.DB)
	subdivisionLookup := persistence.NewGormSubdivisionLookup(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Creation lock backend
	var locks appsync.CreationLock
	switch cfg.Lock.Backend {
	case "redis":
		redisLock, err := cache.NewRedisKeyLock(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisLock.Close(); err != nil {
				log.Error("Error closing Redis lock", zap.Error(err))
			}
		}()
		locks = redisLock
		log.Info("Using Redis creation lock")
	default:
		locks = cache.NewInMemoryKeyLock()
		log.Info("Using in-memory creation lock")
	}

	// E-commerce platform adapter
	customerAPI, err := ecommerce.NewMagentoAdapter(&ecommerce.MagentoConfig{
		TimeoutSeconds: cfg.Magento.TimeoutSeconds,
	})
	if err != nil {
		log.Fatal("Failed to initialize Magento adapter", zap.Error(err))
	}

	// Application services
	importService := appsync.NewImportService(txScope, customerAPI, countryLookup, subdivisionLookup, locks, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configure request validation
	middleware.SetupValidator()

	// Create Gin engine without default middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	} else {
		if err := engine.SetTrustedProxies(nil); err != nil {
			log.Fatal("Failed to clear trusted proxies", zap.Error(err))
		}
	}

	// Global middleware
	engine.Use(logger.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	// Health check endpoint (outside API version group)
	engine.GET("/health", healthHandler(db, log))

	// Setup versioned API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSyncHandler(importService, channelRepo)).
		Register(handler.NewChannelHandler(channelRepo))
	r.Setup()

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
