// Package cli provides the interactive HeartTrack command-line client.
//
// It wires configuration and the HTTP API client into a REPL. One CLI
// process is one server session: registering, logging in and logging
// vitals all happen in that session's private store.
//
// Key features:
//   - register / login / logout, with passwords read without echo
//   - log vitals and view the personal or admin dashboard as tables
//   - edit the session's alert thresholds
//   - export CSVs into the export directory, or archive them to storage
package cli
