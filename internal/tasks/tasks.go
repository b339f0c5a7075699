package tasks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytaudio/internal/models"
	"github.com/desertthunder/ytaudio/internal/repositories"
	"github.com/desertthunder/ytaudio/internal/services"
	"github.com/desertthunder/ytaudio/internal/shared"
	"golang.org/x/time/rate"
)

// Leading markers that let scripts tell outcomes apart.
const (
	SuccessMarker = "✅"
	SkipMarker    = "⚠️"
)

const (
	defaultSingleDir   = "Single Downloads"
	defaultPlaylistDir = "Playlist Downloads"
	titlePlaceholder   = "%(title)s"
	extPlaceholder     = "%(ext)s"
)

// ResultKind tells a completed download apart from a skipped one.
type ResultKind int

const (
	KindDownloaded ResultKind = iota
	KindSkipped
)

// DownloadResult contains the outcome of one [DownloadEngine.Download] call.
type DownloadResult struct {
	Kind       ResultKind
	Message    string // Human-readable summary, prefixed with SuccessMarker or SkipMarker
	Playlist   bool   // URL was classified as a playlist
	Downloaded int    // Items fetched and recorded
	Skipped    int    // Items already in the ledger
	Failed     int    // Playlist items whose fetch failed
	Folder     string // Destination folder relative to the output root
}

// AlbumTagger writes album metadata to a downloaded file.
type AlbumTagger interface {
	TagAlbum(path, album string) error
}

// EngineOptions configures a [DownloadEngine].
type EngineOptions struct {
	Format       models.AudioFormat // Target codec; defaults to mp3
	OutputName   string             // Custom base name for a single video
	PlaylistName string             // Custom folder name for playlists
	OutputRoot   string             // Base directory; empty means the working directory
	SingleDir    string             // Defaults to "Single Downloads"
	PlaylistDir  string             // Defaults to "Playlist Downloads"
	Limiter      *rate.Limiter      // Optional pacing applied before each fetch
	Tagger       AlbumTagger        // Optional album tagging of MP3 playlist items
	Logger       *log.Logger
}

// DownloadEngine coordinates classification, ledger lookups, output templating and fetching.
//
// Items are processed one at a time in source order. The ledger is appended to right after each
// successful fetch, so an interrupted run can be repeated and resumes where it stopped.
type DownloadEngine struct {
	fetcher services.MediaFetcher
	ledger  repositories.Ledger
	opts    EngineOptions
	logger  *log.Logger
}

// playlistPlan is the output of the probe phase.
type playlistPlan struct {
	descriptor *models.PlaylistDescriptor
	folder     string   // Sanitized folder name
	pending    []string // Member URLs to fetch, in playlist order
	skipped    int      // Members already in the ledger
}

// NewDownloadEngine creates a new DownloadEngine with the provided fetcher and ledger.
func NewDownloadEngine(fetcher services.MediaFetcher, ledger repositories.Ledger, opts EngineOptions) *DownloadEngine {
	if opts.Format == "" {
		opts.Format = models.FormatMP3
	}
	if opts.SingleDir == "" {
		opts.SingleDir = defaultSingleDir
	}
	if opts.PlaylistDir == "" {
		opts.PlaylistDir = defaultPlaylistDir
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &DownloadEngine{
		fetcher: fetcher,
		ledger:  ledger,
		opts:    opts,
		logger:  opts.Logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *DownloadEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// DownloadAudio downloads url and returns a human-readable status message.
func (e *DownloadEngine) DownloadAudio(ctx context.Context, url string, progress chan<- ProgressUpdate) (string, error) {
	result, err := e.Download(ctx, url, progress)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

// Download classifies url and runs the single-video or playlist path.
func (e *DownloadEngine) Download(ctx context.Context, url string, progress chan<- ProgressUpdate) (*DownloadResult, error) {
	playlist := shared.IsPlaylistURL(url)
	e.sendProgress(progress, classifyUpdate(url, playlist))

	var result *DownloadResult
	var err error
	if playlist {
		result, err = e.downloadPlaylist(ctx, url, progress)
	} else {
		result, err = e.downloadSingle(ctx, url, progress)
	}
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, completeUpdate(result))
	return result, nil
}

func (e *DownloadEngine) downloadSingle(ctx context.Context, url string, progress chan<- ProgressUpdate) (*DownloadResult, error) {
	if e.ledger.Contains(url) {
		e.logger.Info("video already downloaded", "url", url)
		e.sendProgress(progress, skipItemUpdate(url))
		return &DownloadResult{
			Kind:    KindSkipped,
			Message: fmt.Sprintf("%s Video already downloaded. Skipping: %s", SkipMarker, url),
			Skipped: 1,
			Folder:  e.opts.SingleDir,
		}, nil
	}

	name := titlePlaceholder
	if e.opts.OutputName != "" {
		name = escapeTemplate(e.opts.OutputName)
	}
	target := models.FetchTarget{
		URL:      url,
		Template: e.template(e.opts.SingleDir, name),
		Format:   e.opts.Format,
	}

	if err := e.wait(ctx); err != nil {
		return nil, err
	}

	e.sendProgress(progress, fetchItemUpdate(1, 1, url))
	e.logger.Info("downloading video", "url", url, "format", e.opts.Format)

	fetched, err := e.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrFetchFailed, url, err)
	}
	e.ledger.Append(url)

	title := e.opts.OutputName
	if title == "" && fetched != nil {
		title = fetched.Title
	}
	if title == "" {
		title = "Unknown Video"
	}

	return &DownloadResult{
		Kind: KindDownloaded,
		Message: fmt.Sprintf("%s Download complete! Saved in '%s' folder as '%s.%s'.",
			SuccessMarker, e.opts.SingleDir, title, e.opts.Format),
		Downloaded: 1,
		Folder:     e.opts.SingleDir,
	}, nil
}

func (e *DownloadEngine) downloadPlaylist(ctx context.Context, url string, progress chan<- ProgressUpdate) (*DownloadResult, error) {
	plan, err := e.planPlaylist(ctx, url, progress)
	if err != nil {
		return nil, err
	}

	folder := e.opts.PlaylistDir + "/" + plan.folder
	if len(plan.pending) == 0 {
		e.logger.Info("all playlist videos already downloaded", "url", url, "skipped", plan.skipped)
		return &DownloadResult{
			Kind:     KindSkipped,
			Message:  fmt.Sprintf("%s All videos in playlist already downloaded. Skipping: %s", SkipMarker, folder),
			Playlist: true,
			Skipped:  plan.skipped,
			Folder:   folder,
		}, nil
	}

	return e.executePlan(ctx, plan, folder, progress)
}

// planPlaylist probes url and partitions its members against the ledger.
func (e *DownloadEngine) planPlaylist(ctx context.Context, url string, progress chan<- ProgressUpdate) (*playlistPlan, error) {
	e.sendProgress(progress, probingUpdate(url))
	e.logger.Info("probing playlist", "url", url)

	descriptor, err := e.fetcher.Probe(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrProbeFailed, url, err)
	}
	if descriptor == nil || len(descriptor.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmptyPlaylist, url)
	}

	title := e.opts.PlaylistName
	if title == "" {
		title = descriptor.Title
	}
	if title == "" {
		title = "Unknown Playlist"
	}

	plan := &playlistPlan{
		descriptor: descriptor,
		folder:     shared.SanitizeFolderName(title),
	}

	recorded := e.ledger.ReadAll()
	for _, member := range descriptor.URLs() {
		if _, ok := recorded[member]; ok {
			plan.skipped++
			continue
		}
		plan.pending = append(plan.pending, member)
	}

	e.sendProgress(progress, probedUpdate(plan))
	return plan, nil
}

// executePlan fetches each pending member independently. A failed member is logged and skipped.
func (e *DownloadEngine) executePlan(ctx context.Context, plan *playlistPlan, folder string, progress chan<- ProgressUpdate) (*DownloadResult, error) {
	result := &DownloadResult{
		Kind:     KindDownloaded,
		Playlist: true,
		Skipped:  plan.skipped,
		Folder:   folder,
	}
	template := e.template(e.opts.PlaylistDir, escapeTemplate(plan.folder), titlePlaceholder)
	total := len(plan.pending)

	for i, member := range plan.pending {
		if err := e.wait(ctx); err != nil {
			return nil, err
		}

		e.sendProgress(progress, fetchItemUpdate(i+1, total, member))

		fetched, err := e.fetcher.Fetch(ctx, models.FetchTarget{URL: member, Template: template, Format: e.opts.Format})
		if err != nil {
			result.Failed++
			e.logger.Debug("failed to download playlist item", "url", member, "error", err)
			e.sendProgress(progress, fetchFailedUpdate(i+1, total, member, err))
			continue
		}

		e.ledger.Append(member)
		result.Downloaded++
		e.tag(fetched, plan.folder)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s Playlist download complete! Saved in folder: '%s'. ", SuccessMarker, folder)
	fmt.Fprintf(&msg, "Downloaded %d new video(s)", result.Downloaded)
	if result.Skipped > 0 {
		fmt.Fprintf(&msg, ", skipped %d already downloaded video(s)", result.Skipped)
	}
	msg.WriteString(".")
	result.Message = msg.String()

	e.logger.Info("playlist finished", "folder", folder, "downloaded", result.Downloaded,
		"skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

// tag sets the album of an MP3 playlist item. Failures never affect the download.
func (e *DownloadEngine) tag(fetched *models.FetchResult, album string) {
	if e.opts.Tagger == nil || e.opts.Format != models.FormatMP3 || fetched == nil || fetched.Path == "" {
		return
	}
	if err := e.opts.Tagger.TagAlbum(fetched.Path, album); err != nil {
		e.logger.Debug("failed to tag album", "path", fetched.Path, "error", err)
	}
}

// wait applies the optional limiter and stops on a cancelled context.
func (e *DownloadEngine) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("download interrupted: %w", err)
	}
	if e.opts.Limiter == nil {
		return nil
	}
	if err := e.opts.Limiter.Wait(ctx); err != nil {
		return fmt.Errorf("download interrupted: %w", err)
	}
	return nil
}

// template joins the output root and folders with a "<name>.%(ext)s" file name.
func (e *DownloadEngine) template(dir string, parts ...string) string {
	segments := []string{escapeTemplate(e.opts.OutputRoot), escapeTemplate(dir)}
	segments = append(segments, parts[:len(parts)-1]...)
	segments = append(segments, parts[len(parts)-1]+"."+extPlaceholder)
	return filepath.Join(segments...)
}

// escapeTemplate protects literal text from yt-dlp's %-style template expansion.
func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// IsSkipMessage reports whether msg describes an item that was skipped rather than downloaded.
func IsSkipMessage(msg string) bool {
	return strings.HasPrefix(msg, SkipMarker)
}
