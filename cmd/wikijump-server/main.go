package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/wikijump/config"
	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/server"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	level, levelErr := diag.ParseLevel(cfg.Log.Level)
	log := diag.NewJSON(os.Stdout, level)
	diag.SetLogger(log)

	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if levelErr != nil {
		log.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}

	measurer, closer := config.Measurer(cfg.Server.Metrics)
	defer closer.Close()

	srv := server.NewServer(
		server.NewResolver(cfg.Content),
		layout.NewEngine(cfg.Layout, measurer),
		log,
		cfg.Server,
	)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Content.Timeout*time.Duration(cfg.Content.MaxRetries+1) + cfg.Server.ReadTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown; the measurer stays open until in-flight requests finish
	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting layout service", "addr", cfg.Server.Addr, "metrics", cfg.Server.Metrics)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-idle
}
