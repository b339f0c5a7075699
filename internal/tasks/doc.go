// Package tasks orchestrates audio downloads with real-time progress reporting.
//
// # Core Operations
//
// [DownloadEngine] exposes two entry points:
//
//  1. [DownloadEngine.Download] : Classify a URL and download it
//     - Single videos are skipped when the ledger already holds the URL
//     - Playlists are probed first, then only members missing from the ledger are fetched
//     - Returns a [DownloadResult] with counts and a status message
//
//  2. [DownloadEngine.DownloadAudio] : Same as Download, returning only the status message
//
// Status messages begin with [SuccessMarker] or [SkipMarker]; [IsSkipMessage] tells them apart.
//
// # Batches
//
// [RunBatch] processes a URL list in order and tallies the outcomes into a [BatchTally].
// A failed URL never stops the ones after it.
//
// # Progress Reporting
//
// The [ProgressUpdate] struct contains phase, step counters and a message.
// Updates use select with default to prevent blocking, and a nil channel is allowed.
//
// # Implementation
//
// [DownloadEngine] depends on:
//   - [services.MediaFetcher] : yt-dlp backed probe and fetch
//   - [repositories.Ledger] : record of URLs already downloaded
//   - [AlbumTagger] : Optional album tagging of playlist items (audio.Tagger)
package tasks
