// Package cli provides the interactive Crack command-line client.
//
// It wires configuration, local storage, and the core services (session,
// ledger, transfer) into an interactive REPL. Typical flow: restore the
// persisted session, then execute user commands.
//
// Key features:
//   - Register / Login / Logout (local identity, no server)
//   - Profile view and settings editing, avatar picker
//   - Balance display, coin top-up packages
//   - Gift catalog browsing and sending gifts to directory contacts
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
