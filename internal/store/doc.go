// Package store keeps the registry of clones grab has performed.
//
// The backing store is BoltDB, an embedded key-value database, holding one
// [Record] per clone in two buckets:
//
//   - clones: URL -> Record JSON
//   - paths:  destination path -> URL
//
// The paths bucket guards against recording two clones for one directory.
// Open a [Registry] with [Open] (explicit path, used by tests) or
// [OpenDefault] (registry file in the application directory).
package store
