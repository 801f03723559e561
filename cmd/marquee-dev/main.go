package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/five82/marquee/internal/devserver"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env may set MARQUEE_DEV_ADDR and MARQUEE_DEV_SEED.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("MARQUEE_DEV_ADDR", "127.0.0.1:8080"), "listen address")
	seedPath := flag.String("seed", os.Getenv("MARQUEE_DEV_SEED"), "YAML fixture file (default built-in films)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	seeds, err := devserver.LoadSeed(*seedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marquee-dev: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := devserver.New(devserver.NewCatalog(seeds), logger)
	if err := server.ListenAndServe(ctx, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "marquee-dev: %v\n", err)
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
