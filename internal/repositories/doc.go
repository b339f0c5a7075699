// Package repositories implements persistence for ytaudio.
//
// The only persisted entity is the download ledger: a plain text file holding one source URL per line,
// appended to after each successful fetch and never rewritten.
//
// Key Implementations:
//   - [Ledger] : the interface the download engine depends on
//   - [FileLedger] : file-backed implementation with fail-open reads and silent, debug-logged append failures
//
// Reads rebuild the whole set from disk on each call, so records appended earlier in the same run are always visible.
// Nothing locks the file; concurrent runs against one ledger can race on append (lost or interleaved lines, never a rewrite).
package repositories
