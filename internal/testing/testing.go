// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/ytaudio/internal/models"
)

// MockFetcher is a test double for [services.MediaFetcher].
//
// Probe returns Playlist (or ProbeErr). Fetch records every target and fails for URLs listed in FetchErrs.
type MockFetcher struct {
	Playlist  *models.PlaylistDescriptor
	ProbeErr  error
	FetchErrs map[string]error
	Titles    map[string]string // Title reported per URL; defaults to "Title of <url>"
	Paths     map[string]string // Path reported per URL; empty by default

	// BeforeFetch runs before each fetch; a non-nil error fails that fetch.
	BeforeFetch func(target models.FetchTarget) error

	ProbeCalls int
	Fetched    []models.FetchTarget
}

func (m *MockFetcher) Probe(ctx context.Context, url string) (*models.PlaylistDescriptor, error) {
	m.ProbeCalls++
	if m.ProbeErr != nil {
		return nil, m.ProbeErr
	}
	if m.Playlist == nil {
		return &models.PlaylistDescriptor{}, nil
	}
	return m.Playlist, nil
}

func (m *MockFetcher) Fetch(ctx context.Context, target models.FetchTarget) (*models.FetchResult, error) {
	m.Fetched = append(m.Fetched, target)
	if m.BeforeFetch != nil {
		if err := m.BeforeFetch(target); err != nil {
			return nil, err
		}
	}
	if err, ok := m.FetchErrs[target.URL]; ok {
		return nil, err
	}

	title, ok := m.Titles[target.URL]
	if !ok {
		title = "Title of " + target.URL
	}
	return &models.FetchResult{Title: title, Path: m.Paths[target.URL]}, nil
}

// FetchedURLs returns the URL of every recorded fetch in call order.
func (m *MockFetcher) FetchedURLs() []string {
	urls := make([]string, len(m.Fetched))
	for i, target := range m.Fetched {
		urls[i] = target.URL
	}
	return urls
}

// NewPlaylist builds a descriptor whose entries carry the given URLs as webpage URLs.
func NewPlaylist(title string, urls ...string) *models.PlaylistDescriptor {
	p := &models.PlaylistDescriptor{Title: title}
	for _, u := range urls {
		p.Entries = append(p.Entries, models.PlaylistEntry{WebpageURL: u})
	}
	return p
}

// MockTagger records album tagging calls and optionally fails them.
type MockTagger struct {
	Err    error
	Tagged map[string]string // path -> album
}

func (m *MockTagger) TagAlbum(path, album string) error {
	if m.Tagged == nil {
		m.Tagged = make(map[string]string)
	}
	m.Tagged[path] = album
	return m.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
