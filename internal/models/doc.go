// Package models defines the value types passed between the download orchestrator and the media fetcher.
//
// None of these types are persisted. The only durable state in ytaudio is the download ledger (see repositories).
//
//   - [AudioFormat] : the enumerated set of target codecs
//   - [FetchTarget] : one resolved (URL, output template, codec) tuple
//   - [PlaylistDescriptor] : probe result with a title and ordered [PlaylistEntry] members
//   - [FetchResult] : what the fetcher reports after a successful fetch
package models
