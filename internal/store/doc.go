// Package store persists named layout contracts in a local SQLite
// database. It backs the push, pull and list CLI commands.
//
// Every push of a named contract records a revision stamped with the
// canonical content hash and an auto-assigned logical sequence number.
// "Latest" always means highest seq; wall-clock timestamps are stored
// for display only and never used for ordering. Pushing content whose
// hash matches the newest revision of that name is detected and
// reported as a no-op.
//
// Databases open in WAL mode with NORMAL synchronous, a 5s busy
// timeout and foreign keys on. Schema application is idempotent, so
// opening an existing database is safe.
package store
