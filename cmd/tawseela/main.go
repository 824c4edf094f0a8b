package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tawseela/tawseela/internal/pkg/config"
	"github.com/tawseela/tawseela/internal/pkg/health"
	"github.com/tawseela/tawseela/internal/pkg/kvstore"
	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/middleware"
	"github.com/tawseela/tawseela/internal/pkg/offline"
	"github.com/tawseela/tawseela/internal/pkg/tabular"
	historyHandler "github.com/tawseela/tawseela/services/history/handler"
	historyUsecase "github.com/tawseela/tawseela/services/history/usecase"
	"github.com/tawseela/tawseela/services/rides/handler"
	"github.com/tawseela/tawseela/services/rides/repository"
	"github.com/tawseela/tawseela/services/rides/usecase"
)

func main() {
	appName := "tawseela"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Local store backing cache, offline queue and device history. Redis
	// when configured, in-process memory otherwise.
	var kv kvstore.Store
	if configs.Redis.Host != "" {
		redisStore, err := kvstore.NewRedis(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		kv = redisStore
	} else {
		kv = kvstore.NewMemory()
		zapLogger.Warn("REDIS_HOST not set, using in-memory store")
	}

	// Tabular backend client plus the connectivity-aware wrapper
	tab := tabular.NewClient(configs.Backend)
	probe, err := offline.NewNetProbe(configs.Backend.BaseURL, 3*time.Second)
	if err != nil {
		zapLogger.Fatal("Invalid backend base URL", zap.Error(err))
	}
	queue := offline.NewQueue(kv)
	offlineClient := offline.NewClient(tab, probe, queue, kv)

	// Initialize repository
	rideRepo := repository.NewRideRepo(configs, tab, offlineClient)

	// Initialize use cases
	historyUC := historyUsecase.NewHistoryUC(configs, kv)
	rideUC := usecase.NewRideUC(configs, rideRepo, historyUC)

	// Drop history tokens past retention before serving
	if purged := historyUC.PurgeExpired(context.Background()); purged > 0 {
		zapLogger.Info("Purged expired history tokens", zap.Int("count", purged))
	}

	// Initialize handlers
	rideHandler := handler.NewRideHandler(rideUC)
	histHandler := historyHandler.NewHistoryHandler(historyUC)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	rideHandler.RegisterRoutes(e)
	histHandler.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
