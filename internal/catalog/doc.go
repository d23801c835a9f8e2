// Package catalog maintains the offline-first product catalog.
//
// # Overview
//
// The Cache is the single owner of the in-memory products and flavors
// lists. It moves through three states:
//
//	SEEDED ──(Refresh)──→ REVALIDATING ──(success)──→ FRESH
//	                            │                        │
//	                            └──(failure: keep last)──┘
//
// Initialize adopts the bundled seed synchronously, so the UI can render
// before any network access. Refresh revalidates in the background: within
// the TTL a persisted snapshot is adopted from disk; past it, the remote
// source is fetched and merged over the current catalog.
//
// # Merge semantics
//
// The remote source is authoritative for anything it defines. Merging keys
// entries by normalized name (case-folded, trimmed): remote entries come
// first, and a default only survives when no remote entry shares its name.
// The output never contains two entries with the same normalized name, and
// merging is deterministic and idempotent for a given input pair.
//
// # Failure model
//
// A fetch or decode failure during Refresh leaves the current snapshot
// untouched and unpersisted. The worst observable outcome is a stale
// catalog, never an empty one.
//
// # Publication
//
// Subscribers registered with Subscribe are invoked synchronously after
// each published snapshot, on the refreshing goroutine, with an independent
// copy. The cart reconciler is the primary subscriber; the UI is another.
package catalog
