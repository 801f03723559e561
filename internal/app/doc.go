// Package app wires configuration, logging, the movies client, the state
// store and the TUI together.
//
// # Components
//
//   - Controller: runs the fetch lifecycle. Start enters Loading and returns
//     a generation; Resolve performs the GET and records Success or Error for
//     that generation only. A non-2xx response is shown as
//     "Something went wrong"; other failures keep their own text.
//   - Submitter: posts one new movie per call and never touches fetch state.
//   - Refresher: optional periodic fetch, enabled by refresh_interval.
//
// The UI depends on the Fetcher and Submitter shapes only, so the
// controller and submitter are exercised in tests through gomock doubles of
// MovieSource and MovieSink (see interfaces.go and mocks/).
//
// Logs go to the configured log file through log/slog, since the terminal
// belongs to the TUI.
package app
