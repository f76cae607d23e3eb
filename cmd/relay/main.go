package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/younwookim/splitshot/internal/infrastructure/config"
	"github.com/younwookim/splitshot/internal/relay"
)

func main() {
	if err := config.LoadEnvFiles(".env"); err != nil {
		slog.Error("env load failed", "err", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if config.GetEnvDefault("RELAY_DEBUG", "") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := config.GetEnvDefault("RELAY_ADDR", ":8080")
	writeTimeout, err := config.GetEnvDuration("RELAY_WRITE_TIMEOUT", 5*time.Second)
	if err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	hubOpts := []relay.HubOption{relay.WithWriteTimeout(writeTimeout)}
	if origins := config.GetEnvDefault("RELAY_ORIGINS", ""); origins != "" {
		hubOpts = append(hubOpts, relay.WithOriginPatterns(strings.Split(origins, ",")...))
	}
	hub := relay.NewHub(logger, hubOpts...)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := &http.Server{
		Addr:    addr,
		Handler: mux,
		// Shutdown does not track hijacked connections; ctx ends their loops
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("relay server error", "err", err)
			stop()
		}
	}()
	logger.InfoContext(ctx, "relay listening", "addr", addr)

	<-ctx.Done()
	logger.Info("shutdown initiated", "peers", hub.Count())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		if err := s.Close(); err != nil {
			logger.Error("forced close failed", "err", err)
		}
	}
	logger.Info("relay shutdown complete")
}
