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

	"golang.org/x/sync/errgroup"

	"smartnotes/internal/config"
	"smartnotes/internal/handler"
	transport "smartnotes/internal/http"
	"smartnotes/internal/locale"
	"smartnotes/internal/logger"
	"smartnotes/internal/network"
	"smartnotes/internal/service"
	"smartnotes/internal/service/ai"
	"smartnotes/web"
)

const shutdownTimeout = 10 * time.Second

// @title SmartNotes API
// @version 1.0.0
// @description Summarize notes with a Groq-hosted model.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	messages := locale.Get(cfg.Locale)

	// No client timeout: provider calls run as long as the provider takes.
	httpClient := network.NewClientFactory(cfg.ProxyURL).NewHTTPClient(0)

	summarizeService := service.NewSummarizeService(
		config.EnvKey(config.APIKeyEnv),
		ai.Config{BaseURL: cfg.Groq.BaseURL, Model: cfg.Groq.Model, HTTPClient: httpClient},
		ai.NewProvider,
		messages,
	)

	assets, err := web.Assets()
	if err != nil {
		log.Fatalf("load embedded page: %v", err)
	}

	router := transport.NewRouter(
		handler.NewSummarizeHandler(summarizeService, messages),
		handler.NewHealthHandler(config.AppVersion),
		messages,
		cfg.StaticDir,
		assets,
	)

	if os.Getenv(config.APIKeyEnv) == "" {
		logger.Warn("api key not set", "module", "server", "action", "start", "resource", "config", "result", "failed", "env", config.APIKeyEnv)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "module", "server", "action", "start", "resource", "http", "result", "ok", "app", config.AppName, "addr", cfg.Addr, "model", cfg.Groq.Model, "locale", cfg.Locale)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "module", "server", "action", "stop", "resource", "http", "result", "ok")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
