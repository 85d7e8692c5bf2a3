// Package localstore is the POS terminal's durable store: a single SQLite
// database holding four named collections — the products and clients read
// caches, the pending-sales ledger, and the sync action queue.
//
// The store is the sole source of truth on the terminal; in-memory UI state
// only ever holds copies. Every mutation is atomic with respect to its
// collection, and the one cross-collection operation — recording a sale plus
// its queue entry — runs inside a single SQL transaction.
//
// The read caches may be wiped and repopulated at will; the two sale
// collections are protected and can never be cleared through
// [DB.ClearCollection], because clearing them would silently discard real,
// unsynced transactions.
package localstore
