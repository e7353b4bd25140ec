package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/config"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/constants"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/database"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/health"
	httppkg "github.com/piresc/nebengjek-dispatch/internal/pkg/http"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/middleware"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/nats"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/retry"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/websocket"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
	"github.com/piresc/nebengjek-dispatch/services/dispatch/gateway"
	"github.com/piresc/nebengjek-dispatch/services/dispatch/handler"
	"github.com/piresc/nebengjek-dispatch/services/dispatch/repository"
	"github.com/piresc/nebengjek-dispatch/services/dispatch/usecase"
)

const (
	storeKindSQL  = "sql"
	storeKindREST = "rest"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("store", configs.Store.Kind),
	)

	healthService := health.NewHealthService(zapLogger)

	// Initialize the record store
	var (
		store dispatch.Store
		db    *sqlx.DB
	)
	switch configs.Store.Kind {
	case storeKindREST:
		client := httppkg.NewClient(httppkg.Config{
			BaseURL: configs.Store.BaseURL,
			APIKey:  configs.Store.APIKey,
			Timeout: configs.Store.Timeout,
			// the provider owns load retries; reads are sent once
			Retry: retry.FixedConfig(1, 0),
		}, zapLogger)
		store = gateway.NewRESTStore(client)
		healthService.SetBreakerStats(client.BreakerStats)
	case storeKindSQL, "":
		db, err = database.Open(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to open database", logger.Err(err))
		}
		defer db.Close()

		sqlStore := repository.NewSQLStore(db)
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := sqlStore.Migrate(migrateCtx); err != nil {
			cancel()
			zapLogger.Fatal("Failed to migrate database", logger.Err(err))
		}
		cancel()
		store = sqlStore
		healthService.AddChecker("database", health.NewDBHealthChecker(db))
	default:
		zapLogger.Fatal("Unknown store kind", logger.String("kind", configs.Store.Kind))
	}

	// Initialize Redis client for token revocation and rate limiting
	var (
		redisClient *database.RedisClient
		sessions    dispatch.SessionRepo
	)
	if configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
		sessions = repository.NewSessionRepo(redisClient)
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	} else {
		zapLogger.Warn("Redis not configured, logout will not revoke tokens")
	}

	// Initialize JetStream-enabled NATS client
	var (
		natsClient *nats.Client
		eventGW    dispatch.EventGW = gateway.NoopEventGW{}
	)
	if configs.NATS.URL != "" {
		natsClient, err = nats.NewClient(configs.NATS.URL, appName, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		defer natsClient.Close()

		streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := natsClient.EnsureStream(streamCtx, nats.StreamDispatch, constants.SubjectDispatchAll); err != nil {
			cancel()
			zapLogger.Fatal("Failed to ensure NATS stream", logger.Err(err))
		}
		cancel()
		eventGW = gateway.NewEventGW(natsClient, zapLogger)
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	} else {
		zapLogger.Warn("NATS not configured, dispatch events are dropped")
	}

	// Initialize usecase
	registry := usecase.NewRegistry(configs, store, eventGW, usecase.WithLogger(zapLogger))

	// Initialize handlers
	wsManager := websocket.NewManager(zapLogger)
	dispatchHandler := handler.NewHandler(registry, sessions, wsManager)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	if configs.Server.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	}
	if configs.Server.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	}

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	dispatchHandler.RegisterRoutes(e, authMiddlewares(configs, sessions, redisClient, zapLogger)...)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Closing WebSocket connections...")
	wsManager.CloseAll()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing data providers...")
	registry.Close()

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}

// authMiddlewares builds the /v1 middleware chain: JWT auth, then a per-user
// rate limit when Redis is available
func authMiddlewares(configs *models.Config, sessions dispatch.SessionRepo, redisClient *database.RedisClient, l *logger.ZapLogger) []echo.MiddlewareFunc {
	var revocations middleware.RevocationChecker
	if sessions != nil {
		revocations = sessions
	}
	chain := []echo.MiddlewareFunc{middleware.JWTAuthMiddleware(configs.JWT, revocations, l)}

	if redisClient != nil && configs.Server.RateLimit > 0 {
		chain = append(chain, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Resource:    "v1",
			Limit:       configs.Server.RateLimit,
			Period:      time.Minute,
			Logger:      l,
		}))
	}
	return chain
}
