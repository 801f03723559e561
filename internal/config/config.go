package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/marquee/internal/movies"
)

// Config captures everything marquee needs to reach its endpoints.
type Config struct {
	ReadURL         string
	WriteURL        string
	Format          movies.Format
	Timeout         time.Duration
	RefreshInterval time.Duration // zero disables periodic refresh
	LogFile         string
	LogLevel        slog.Level
}

const (
	defaultConfigPath = "~/.config/marquee/config.toml"
	defaultLogFile    = "~/.local/state/marquee/marquee.log"
	defaultReadURL    = "https://swapi.dev/api/films/"
	defaultTimeout    = 10 * time.Second
	defaultEnvFile    = ".env"
)

// Environment overrides, applied after the config file.
const (
	EnvReadURL  = "MARQUEE_READ_URL"
	EnvWriteURL = "MARQUEE_WRITE_URL"
	EnvFormat   = "MARQUEE_FORMAT"
	EnvLogLevel = "MARQUEE_LOG_LEVEL"
)

type fileConfig struct {
	ReadURL         string `toml:"read_url"`
	WriteURL        string `toml:"write_url"`
	Format          string `toml:"format"`
	Timeout         string `toml:"timeout"`
	RefreshInterval string `toml:"refresh_interval"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies .env and process environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	// A missing .env is the normal case.
	_ = godotenv.Load(defaultEnvFile)

	var raw fileConfig
	bytes, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if bytes != nil {
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&raw)

	return build(raw)
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return bytes, nil
}

func applyEnv(raw *fileConfig) {
	if v, ok := os.LookupEnv(EnvReadURL); ok {
		raw.ReadURL = v
	}
	if v, ok := os.LookupEnv(EnvWriteURL); ok {
		raw.WriteURL = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		raw.Format = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		raw.LogLevel = v
	}
}

func build(raw fileConfig) (Config, error) {
	cfg := Config{
		ReadURL:  strings.TrimSpace(raw.ReadURL),
		WriteURL: strings.TrimSpace(raw.WriteURL),
		Timeout:  defaultTimeout,
	}
	if cfg.ReadURL == "" {
		cfg.ReadURL = defaultReadURL
	}

	format, err := movies.ParseFormat(raw.Format)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Format = format

	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: invalid timeout %q", v)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(raw.RefreshInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("parse config: invalid refresh_interval %q", v)
		}
		cfg.RefreshInterval = d
	}

	level, err := parseLevel(raw.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.LogLevel = level

	logFile := strings.TrimSpace(raw.LogFile)
	if logFile == "" {
		logFile = defaultLogFile
	}
	cfg.LogFile = mustExpand(logFile)

	return cfg, nil
}

func parseLevel(value string) (slog.Level, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(trimmed)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", value)
	}
	return level, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
