// Package medium provides the key-value persistence medium behind the
// repository store.
//
// A [Medium] holds opaque byte values under string keys and exposes a
// synchronous Get/Put/Delete API. Every write replaces the whole value, so
// callers that serialise a complete collection per key never observe a
// partially written state.
//
// # Backends
//
//   - [Bolt]: bbolt file (default). Holds an exclusive file lock.
//   - [SQLite]: pure Go SQLite with embedded, versioned schema migrations.
//   - [File]: one file per key, atomic rename on write.
//   - [Redis]: a redis server, for sharing a vault between machines.
//   - [Postgres]: a PostgreSQL table migrated with goose.
//   - [Memory]: in-process map, used by tests.
//
// [Open] selects a backend by name; [WithQuota] wraps any backend with a
// per-value size limit that fails writes with [ErrQuotaExceeded].
package medium
