// Package services defines the [MediaFetcher] interface and implements it with yt-dlp.
//
// # MediaFetcher
//
// The download engine never touches the network itself. It asks a MediaFetcher to:
//   - Probe a playlist URL for its title and ordered member entries (no download)
//   - Fetch a single URL to an output template, converting the audio to a target codec
//
// # yt-dlp Implementation
//
// [YTDLPService] drives the yt-dlp executable through github.com/lrstanley/go-ytdlp.
// Probes run with --flat-playlist --dump-single-json and decode stdout directly.
// Fetches run with -x --audio-format and --print-json so the title and output filename can be read back from the result.
// Output is quiet unless the service is created in debug mode.
//
// # Error Handling
//
//   - [shared.ErrNoExecutable] : yt-dlp could not be located when the service was created
//
// Probe and fetch failures are returned wrapped; the engine decides whether they are fatal.
package services
