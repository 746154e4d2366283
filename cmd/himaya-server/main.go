// cmd/himaya-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"himaya-assistant/internal/api"
	"himaya-assistant/internal/catalog"
	awsclient "himaya-assistant/internal/common/aws"
	"himaya-assistant/internal/common/config"
	"himaya-assistant/internal/common/database"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/common/observability"
	"himaya-assistant/internal/dialogue"
	"himaya-assistant/internal/eligibility"
	"himaya-assistant/internal/notify"
	"himaya-assistant/internal/users"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting HIMAYA server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	ctx := context.Background()

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("otel meter unavailable, pipeline timings disabled", zap.Error(err))
	}
	defer func() {
		if err := obs.Shutdown(context.Background()); err != nil {
			zapLog.Error("otel shutdown failed", zap.Error(err))
		}
	}()

	// --- Scheme catalog ---
	schemes, err := catalog.LoadOrEmbedded(cfg.Catalog.Path)
	if err != nil {
		zapLog.Fatal("scheme catalog failed to load", zap.Error(err), zap.String("path", cfg.Catalog.Path))
	}
	zapLog.Info("Scheme catalog loaded", zap.Int("schemes", schemes.Len()))

	// --- User store, Redis with retry when configured ---
	var repo users.Repository
	if cfg.UsesRedis() {
		var rdb *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rdb.Close()
		zapLog.Info("Redis connected successfully")

		repo = users.NewRepository(cfg.Users, rdb.Client)
	} else {
		repo = users.NewRepository(cfg.Users, nil)
	}

	evaluator := eligibility.NewEvaluator(schemes)
	userService := users.NewService(repo, evaluator, log)
	generator := dialogue.NewGenerator(schemes, log, obs)

	// --- SMS notifications ---
	var notifier *notify.Handler
	if cfg.Notifications.SMS.Enabled {
		snsClient, err := awsclient.NewSNSClient(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.SMS.SenderID)
		if err != nil {
			zapLog.Error("SNS client init failed, SMS disabled", zap.Error(err))
		} else {
			notifier = notify.NewHandler(notify.LoadConfig(cfg), userService, snsClient, log)
			zapLog.Info("SMS notifications enabled", zap.String("region", cfg.Notifications.AWS.Region))
		}
	}

	server := api.NewServer(api.LoadConfig(cfg), schemes, evaluator, generator, userService, notifier, log)

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error during HTTP shutdown", zap.Error(err))
	}

	zapLog.Info("HIMAYA server stopped gracefully")
}
