// SPDX-License-Identifier: MIT

// Package progress remembers which levels a player has completed and the
// cheapest winning energy seen for each.
//
// Two Store implementations are provided. MemoryStore suits tests and
// short-lived sessions. SQLiteStore keeps progress in a single local file
// (or ":memory:") using the pure-Go modernc.org/sqlite driver.
//
// Only completion is persisted. Paths and optima are recomputed from the
// level data on demand.
package progress
