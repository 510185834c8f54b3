package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mediashelf/mediashelf/internal/config"
	httpserver "github.com/mediashelf/mediashelf/internal/http"
	"github.com/mediashelf/mediashelf/internal/repository"
	"github.com/mediashelf/mediashelf/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zlog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	logger := zlog.Sugar()

	storeOpts := store.Options{
		MaxConns:               int32(cfg.DBMaxConns),
		MinConns:               int32(cfg.DBMinConns),
		MaxConnIdleTime:        time.Duration(cfg.DBMaxIdleSecs) * time.Second,
		MaxConnLifetime:        time.Duration(cfg.DBMaxLifeSecs) * time.Second,
		ConnTimeout:            time.Duration(cfg.DBConnTimeoutSecs) * time.Second,
		StatementCacheCapacity: cfg.DBStatementCache,
		Logger:                 logger,
	}

	st, err := store.New(ctx, cfg.DBURL, storeOpts)
	if err != nil {
		logger.Fatalw("init store", "error", err)
	}
	defer st.Close()

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := st.HealthCheck(dbCtx); err != nil {
		// Outside development the server starts degraded and the health
		// endpoint reports the store as disconnected.
		if cfg.IsDevelopment() {
			cancel()
			logger.Fatalw("database unreachable", "error", err)
		}
		logger.Warnw("database unreachable, starting degraded", "error", err)
	} else {
		logger.Info("database connection established")
	}
	cancel()

	repo := repository.New(st)
	server := httpserver.New(cfg, st, repo, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			logger.Errorw("server error", "error", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("graceful shutdown error", "error", err)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
