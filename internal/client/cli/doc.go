// Package cli provides the interactive MediCart command-line client.
//
// It wires configuration, the local key-value store, the account and order
// services, and the remote product catalog into an interactive REPL. Typical
// flow: restore the persisted session and cart, then execute user commands.
//
// Key features:
//   - Register / Login / Logout with a session that survives restarts
//   - Browse / search the catalog, list categories
//   - Cart management: add, remove, change quantity, clear
//   - Checkout into an order ledger and per-user order history
//   - Profile view and update
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
