// Package core orchestrates a clone run from URL to finished repository.
//
// The package contains no I/O of its own. A [Cloner] resolves the
// repository URL, derives the destination directories, and drives an
// injected [backend.Backend] through the observable steps:
//
//  1. Ensure <base>/<host>/<owner> exists
//  2. Clone into <base>/<host>/<owner>/<project>
//  3. Announce the destination and report success
//
// A failing step aborts the run where it happened; nothing is retried and
// nothing already created is rolled back. [Walk] complements the cloner by
// scanning an existing base directory for clones laid out this way.
package core
