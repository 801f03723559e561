// Package config loads marquee's endpoint and logging configuration.
//
// # Resolution order
//
//  1. Defaults
//  2. ~/.config/marquee/config.toml (or the -config path); a missing file is
//     not an error
//  3. A .env file in the working directory (loaded with godotenv; it never
//     overrides variables already set in the process)
//  4. MARQUEE_READ_URL, MARQUEE_WRITE_URL, MARQUEE_FORMAT, MARQUEE_LOG_LEVEL
//
// Command-line flags are applied on top by the caller.
//
// # Defaults
//
//   - read_url: https://swapi.dev/api/films/
//   - write_url: empty (adding movies disabled)
//   - format: auto
//   - timeout: 10s
//   - refresh_interval: 0 (no periodic refresh)
//   - log_file: ~/.local/state/marquee/marquee.log
//   - log_level: info
//
// # TOML Format
//
//	read_url = "http://127.0.0.1:8080/movies.json"
//	write_url = "http://127.0.0.1:8080/movies.json"
//	format = "keyed"
//	timeout = "5s"
//	log_level = "debug"
//
// Durations use Go syntax. Tilde expansion is applied to log_file.
package config
