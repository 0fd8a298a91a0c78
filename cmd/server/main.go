// Command server starts the read-only dataset inspection API.
//
// It loads a previously generated export directory (see ./cmd/generate) and
// serves account lookups, newest-first transaction listings joined with any
// downstream fraud scores, and dataset summaries.
//
// Usage:
//
//	go run ./cmd/server [flags]
//
// Flags:
//
//	-port  HTTP port to listen on (default: 8080)
//	-data  Export directory to load (default: data)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/api"
	"github.com/SuperTinCan/CapitalOneAssistant/internal/store"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port")
	dataDir := flag.String("data", "data", "export directory to load")
	flag.Parse()

	// PaaS platforms inject PORT as an env var; it wins over the flag.
	if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			*port = p
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	s, err := store.Load(*dataDir)
	if err != nil {
		slog.Error("dataset not loaded", "dir", *dataDir, "error", err)
		os.Exit(1)
	}
	sum := s.Summarize()
	slog.Info("dataset loaded",
		"dir", *dataDir,
		"run_id", sum.RunID,
		"accounts", sum.Accounts,
		"transactions", sum.Transactions,
		"scored", sum.ScoredCount,
	)

	router := api.NewRouter(api.NewHandler(s))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server listening", "port", *port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
