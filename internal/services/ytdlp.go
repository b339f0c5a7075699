// yt-dlp [MediaFetcher] implementation
//
// Drives the yt-dlp executable through go-ytdlp's command builder.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytaudio/internal/models"
	"github.com/desertthunder/ytaudio/internal/shared"
	"github.com/lrstanley/go-ytdlp"
)

const (
	defaultExecutable = "yt-dlp"
	defaultFormat     = "bestaudio/best"
)

// YTDLPOptions configures a [YTDLPService].
type YTDLPOptions struct {
	Executable string // Path to yt-dlp; empty looks it up on PATH
	Format     string // yt-dlp format selector; empty means bestaudio/best
	Debug      bool   // Verbose yt-dlp output instead of quiet
	Logger     *log.Logger
}

// YTDLPService implements [MediaFetcher] with yt-dlp.
type YTDLPService struct {
	executable string
	format     string
	debug      bool
	logger     *log.Logger
}

// probeEntry is the subset of a flat-playlist entry the engine needs.
type probeEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	WebpageURL string `json:"webpage_url"`
}

// probeInfo is the subset of yt-dlp's --dump-single-json output read by [YTDLPService.Probe].
type probeInfo struct {
	Type    string        `json:"_type"`
	Title   string        `json:"title"`
	Entries []*probeEntry `json:"entries"`
}

// NewYTDLPService resolves the yt-dlp executable and creates the service.
func NewYTDLPService(opts YTDLPOptions) (*YTDLPService, error) {
	executable, err := ResolveExecutable(opts.Executable)
	if err != nil {
		return nil, err
	}

	if opts.Format == "" {
		opts.Format = defaultFormat
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &YTDLPService{
		executable: executable,
		format:     opts.Format,
		debug:      opts.Debug,
		logger:     opts.Logger,
	}, nil
}

// ResolveExecutable returns configured if it names an existing file, otherwise the yt-dlp found on PATH.
func ResolveExecutable(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("%w: %s: %v", shared.ErrNoExecutable, configured, err)
		}
		return configured, nil
	}

	path, err := exec.LookPath(defaultExecutable)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrNoExecutable, err)
	}
	return path, nil
}

// Probe lists playlist members with --flat-playlist --dump-single-json.
func (y *YTDLPService) Probe(ctx context.Context, url string) (*models.PlaylistDescriptor, error) {
	y.logger.Debug("probing playlist", "url", url)

	result, err := ytdlp.New().
		SetExecutable(y.executable).
		FlatPlaylist().
		DumpSingleJSON().
		Quiet().
		NoWarnings().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp probe failed: %w", err)
	}

	return decodeProbe([]byte(result.Stdout))
}

// Fetch downloads one item and extracts its audio track.
func (y *YTDLPService) Fetch(ctx context.Context, target models.FetchTarget) (*models.FetchResult, error) {
	y.logger.Debug("fetching", "url", target.URL, "template", target.Template, "format", target.Format)

	dl := ytdlp.New().
		SetExecutable(y.executable).
		Format(y.format).
		ExtractAudio().
		AudioFormat(target.Format.String()).
		Output(target.Template).
		NoPlaylist().
		PrintJSON()

	if y.debug {
		dl = dl.Verbose()
	} else {
		dl = dl.Quiet().NoWarnings().NoProgress()
	}

	result, err := dl.Run(ctx, target.URL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp fetch failed: %w", err)
	}

	fetched := &models.FetchResult{}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		y.logger.Debug("no extracted info in yt-dlp output", "url", target.URL, "error", err)
		return fetched, nil
	}

	if info[0].Title != nil {
		fetched.Title = *info[0].Title
	}
	if info[0].Filename != nil {
		fetched.Path = convertedPath(*info[0].Filename, target.Format)
	}
	return fetched, nil
}

// decodeProbe parses --dump-single-json output into a [models.PlaylistDescriptor].
//
// Null entries (unavailable videos) are dropped.
func decodeProbe(data []byte) (*models.PlaylistDescriptor, error) {
	var info probeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to decode probe output: %w", err)
	}

	descriptor := &models.PlaylistDescriptor{Title: info.Title}
	for _, entry := range info.Entries {
		if entry == nil {
			continue
		}
		descriptor.Entries = append(descriptor.Entries, models.PlaylistEntry{
			ID:         entry.ID,
			Title:      entry.Title,
			URL:        entry.URL,
			WebpageURL: entry.WebpageURL,
		})
	}
	return descriptor, nil
}

// convertedPath maps the pre-conversion filename yt-dlp reports to the file left after audio extraction.
func convertedPath(filename string, format models.AudioFormat) string {
	if filename == "" {
		return ""
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "." + format.String()
}
