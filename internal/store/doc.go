// Package store persists account records to a single JSON file.
//
// Features:
//   - Thread-safe in-memory map keyed by CPF, mirrored to disk on every mutation
//   - Duplicate detection on CPF and username at registration
//   - Lookup by CPF (constant time), by username and by numeric id (linear scan)
//   - Listing in insertion order, preserved across restarts
//   - Optional reload-before-access so external writers are picked up
//   - Backup of the database file
//
// The file is the whole database: every persist rewrites it via a temp file
// and rename. A missing file is created empty on open; a file that fails to
// decode is ignored with a warning so a corrupt database cannot wipe a
// running store. There is no cross-process locking — the mutex only
// serialises access within one process.
package store
