package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/calloutmd/internal/api"
	"github.com/dgallion1/calloutmd/internal/callout"
	"github.com/dgallion1/calloutmd/internal/config"
	"github.com/dgallion1/calloutmd/internal/icons"
	"github.com/dgallion1/calloutmd/internal/pipeline"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := cfg.LoadSiteFile(); err != nil {
		log.Error("invalid site config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the stage list. Restoration is appended by the pipeline.
	reg := icons.Default()
	calloutStage := callout.New(callout.Options{
		PathToLang: cfg.Site.PathToLang,
		Icons:      reg,
		Logger:     log,
	})
	p := pipeline.New([]pipeline.Stage{calloutStage}, pipeline.WithLogger(log))

	orch := pipeline.NewOrchestrator(cfg, p, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, reg, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()
	}()

	log.Info("starting calloutmd",
		"port", cfg.Port,
		"docs_dir", cfg.Site.DocsDir,
		"locales", len(cfg.Site.Locales),
		"stages", p.Stages(),
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
