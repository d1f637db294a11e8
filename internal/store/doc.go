// Package store persists the task list in a single named key-value slot.
//
// A Slot reads and writes one key of a Backend. The value is a JSON array of
// task records:
//
//	[{"id":"...","text":"Buy milk","completed":false,"createdAt":"2025-03-01T09:00:00Z"}]
//
// Three backends exist:
//   - Store: SQLite file (default), one row per slot key
//   - Redis: one string key per slot, no expiry
//   - Memory: process-local map, for tests and throwaway sessions
//
// # Decoding
//
// Payloads are checked against an embedded CUE schema before they are
// unmarshalled. Anything that fails is reported as ErrCorrupt; callers decide
// whether to surface it. The payload carries no version field.
//
// # SQLite configuration
//
//   - WAL mode: readers do not block the single writer
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// The table layout is versioned through PRAGMA user_version.
package store
