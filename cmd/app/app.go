package app

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
	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/internal/api"
	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/db"
	"github.com/vietanh2810/evote-api/internal/logger"
	"github.com/vietanh2810/evote-api/internal/storage"
)

const (
	configPath        = "./cmd/app/config.yml"
	readHeaderTimeout = 10 * time.Second
)

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	watchConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	rdb, err := db.OpenRedis(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize redis -> %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	store, err := storage.New(ctx, conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s, err := api.NewServer(conf, postgresDB, store, rdb)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	return serve(ctx, s)
}

// watchConfig applies log level edits without a restart. The config file is optional, so a
// failure to watch it is not fatal.
func watchConfig() {
	err := config.Watch(configPath, func(conf *config.AppConfig) {
		if err := logger.SetLevel(conf.API.LogLevel); err != nil {
			zap.L().Warn("invalid log level in config", zap.String("level", conf.API.LogLevel), zap.Error(err))
			return
		}
		zap.L().Info("log level changed", zap.Stringer("level", logger.Level()))
	})
	if err != nil {
		zap.L().Info("config file is not watched", zap.Error(err))
	}
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, s *api.Server) error {
	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.API.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	zap.L().Info("server stopped")

	return nil
}
