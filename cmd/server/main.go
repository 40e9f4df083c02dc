// Package main provides the character hit point HTTP server.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/cory-johannsen/charhp/internal/api"
	"github.com/cory-johannsen/charhp/internal/config"
	"github.com/cory-johannsen/charhp/internal/game/character"
	"github.com/cory-johannsen/charhp/internal/game/health"
	"github.com/cory-johannsen/charhp/internal/observability"
	"github.com/cory-johannsen/charhp/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sheetStart := time.Now()
	sheets, err := character.LoadRegistry(cfg.Content.CharactersDir)
	if err != nil {
		logger.Fatal("loading character sheets", zap.Error(err))
	}
	logger.Info("character sheets loaded",
		zap.Int("count", sheets.Len()),
		zap.String("dir", cfg.Content.CharactersDir),
		zap.Duration("elapsed", time.Since(sheetStart)),
	)

	storeStart := time.Now()
	backend, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("opening health store", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	logger.Info("health store ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.Duration("elapsed", time.Since(storeStart)),
	)

	engine := health.NewEngine(sheets, backend.store, logger.Named("health"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)
	metrics.Instrument(engine)

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(api.RouterConfig{
		Handler:  api.NewHandler(engine, sheets, backend.pinger),
		Logger:   logger.Named("http"),
		Metrics:  metrics,
		Gatherer: registry,
	})

	lc := server.NewLifecycle(logger, cfg.Server.ShutdownTimeout)
	if backend.close != nil {
		// Added first so it stops after the HTTP listener has drained.
		lc.Add("store", &server.FuncService{
			StartFn: func() error { return nil },
			StopFn:  backend.close,
		})
	}
	lc.Add("http", &server.HTTPService{Server: &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}})

	logger.Info("charhp server initialized",
		zap.String("addr", cfg.Server.Addr()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lc.Run(ctx); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
