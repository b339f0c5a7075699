// package models defines the data model for audio downloads
package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/ytaudio/internal/shared"
)

// AudioFormat is a target audio codec understood by the media fetcher.
type AudioFormat string

const (
	FormatMP3  AudioFormat = "mp3"
	FormatWAV  AudioFormat = "wav"
	FormatFLAC AudioFormat = "flac"
	FormatAAC  AudioFormat = "aac"
	FormatOGG  AudioFormat = "ogg"
	FormatM4A  AudioFormat = "m4a"
	FormatOpus AudioFormat = "opus"
)

// SupportedFormats lists every accepted [AudioFormat] in display order.
var SupportedFormats = []AudioFormat{FormatMP3, FormatWAV, FormatFLAC, FormatAAC, FormatOGG, FormatM4A, FormatOpus}

// ParseAudioFormat validates s against [SupportedFormats]. Matching is exact.
func ParseAudioFormat(s string) (AudioFormat, error) {
	for _, f := range SupportedFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q, choose between %s", shared.ErrInvalidFormat, s, FormatNames())
}

// FormatNames returns the supported formats joined for help and error text.
func FormatNames() string {
	names := make([]string, len(SupportedFormats))
	for i, f := range SupportedFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func (f AudioFormat) String() string {
	return string(f)
}

// FetchTarget is one item handed to the media fetcher.
type FetchTarget struct {
	URL      string      // Source URL
	Template string      // yt-dlp output template, e.g. "Single Downloads/%(title)s.%(ext)s"
	Format   AudioFormat // Target codec
}

// PlaylistEntry is a single member of a probed playlist.
type PlaylistEntry struct {
	ID         string
	Title      string
	URL        string
	WebpageURL string
}

// CanonicalURL returns the URL recorded in the ledger for this entry: the webpage URL when known, else the raw URL.
func (e PlaylistEntry) CanonicalURL() string {
	if e.WebpageURL != "" {
		return e.WebpageURL
	}
	return e.URL
}

// PlaylistDescriptor is the metadata-only view of a playlist returned by a probe.
type PlaylistDescriptor struct {
	Title   string
	Entries []PlaylistEntry
}

// URLs returns the canonical URL of each entry in order, dropping entries without one.
func (p *PlaylistDescriptor) URLs() []string {
	urls := make([]string, 0, len(p.Entries))
	for _, entry := range p.Entries {
		if u := entry.CanonicalURL(); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// FetchResult describes a completed fetch.
type FetchResult struct {
	Title string // Title reported by the fetcher
	Path  string // Final file path, empty when it cannot be determined
}
