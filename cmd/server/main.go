package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/derak-isaack/KenyaRe-Hackathon/internal/api"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/config"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/gateway"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/logger"
	"github.com/derak-isaack/KenyaRe-Hackathon/internal/usecase"
)

func main() {
	cfg := config.LoadConfig()
	logger.InitLogger(cfg.LogLevel)

	logger.L.Info("compliance engine server starting", "port", cfg.Port)

	store, err := gateway.NewSQLiteReportStore(cfg.DatabasePath, cfg.MigrationsURL)
	if err != nil {
		logger.L.Error("failed to initialize report store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	reportCache := cache.New(cfg.CacheExpiration, cfg.CacheCleanupInterval)
	analyzer := usecase.NewAnalyzer()
	handler := api.NewAnalysisHandler(analyzer, store, reportCache)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.L.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("shutdown failed", "error", err)
	}
}
