// Package app provides the orchestration layer for the IceCore storefront.
//
// # Overview
//
// This package is the composition root: it wires configuration, the
// persistent store, the catalog cache, the cart ledger, the reconciler, the
// background poller, and the UI into a running application.
//
// # Startup Order
//
//  1. Load configuration (TOML file plus ICECORE_* environment overrides)
//  2. Build the logger (file-backed, under the data directory)
//  3. Build the HTTP client for the backend
//  4. Open the persistent store and load the saved cart
//  5. Seed the catalog cache synchronously - the UI never sees an empty
//     catalog
//  6. Subscribe the reconciler to catalog publications
//  7. Start the background poller (first refresh fires immediately)
//  8. Run the TUI until the user quits or the context is cancelled
//
// # Data Flow
//
//	poller ──Refresh──→ CatalogCache ──publish──→ Reconciler ──replace──→ CartLedger
//	                         │                                               │
//	                         └──────────── Snapshot()/Items() ───────────────┘
//	                                            │
//	                                            UI
//
// The reconciler subscription is registered before the poller starts, so
// the very first successful refresh already repairs a cart persisted by an
// earlier session.
package app
