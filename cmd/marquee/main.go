package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default ~/.config/marquee/config.toml)")
	readURL := flag.String("read-url", "", "movie list endpoint (overrides config)")
	writeURL := flag.String("write-url", "", "endpoint new movies are posted to (overrides config)")
	format := flag.String("format", "", "read payload shape: auto, results or keyed (overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ReadURL:    *readURL,
		WriteURL:   *writeURL,
		Format:     *format,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
