package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/movies"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application. Non-empty endpoint and format
// values override the config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	ReadURL    string
	WriteURL   string
	Format     string
}

// Run boots the marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := movies.NewClient(movies.Options{
		ReadURL:  cfg.ReadURL,
		WriteURL: cfg.WriteURL,
		Format:   cfg.Format,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("init movies client: %w", err)
	}
	logger.Info("marquee starting",
		"read_url", client.ReadURL(),
		"write_url", client.WriteURL(),
		"format", cfg.Format.String(),
	)

	store := &state.Store{}
	controller := NewController(store, client, logger.With("component", "fetch"))
	submitter := NewSubmitter(client, logger.With("component", "submit"))

	refresher := NewRefresher(controller, cfg.RefreshInterval, cfg.Timeout, logger.With("component", "refresh"))
	if refresher.Enabled() {
		go func() {
			if err := refresher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("refresher exited", "error", err)
			}
		}()
	}

	err = ui.Run(ui.Options{
		Context:         ctx,
		Store:           store,
		Fetcher:         controller,
		Submitter:       submitter,
		Logger:          logger.With("component", "ui"),
		ThemeName:       userPrefs.Theme,
		ShowOpeningText: userPrefs.ShowOpeningText,
		PrefsPath:       opts.PrefsPath,
		LogFile:         logPath(cfg),
		ReadURL:         client.ReadURL(),
		WriteURL:        client.WriteURL(),
	})
	logger.Info("marquee stopped")
	return err
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if v := strings.TrimSpace(opts.ReadURL); v != "" {
		cfg.ReadURL = v
	}
	if v := strings.TrimSpace(opts.WriteURL); v != "" {
		cfg.WriteURL = v
	}
	if v := strings.TrimSpace(opts.Format); v != "" {
		format, err := movies.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("format flag: %w", err)
		}
		cfg.Format = format
	}
	return nil
}
