package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/ytaudio/internal/models"
	"github.com/desertthunder/ytaudio/internal/shared"
	"github.com/desertthunder/ytaudio/internal/tasks"
	"github.com/desertthunder/ytaudio/internal/ui"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"
)

// Download fetches the audio of one URL or every URL in a file.
//
// Per-URL failures are reported and never stop the batch; only configuration errors are returned.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	debug := cmd.Bool("debug")
	shared.SetLogLevel(r.logger, shared.LevelFor(debug))

	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	urls, err := r.collectURLs(cmd)
	if err != nil {
		return err
	}

	formatName := cmd.String("format")
	if formatName == "" {
		formatName = r.config.Download.AudioFormat
	}
	format, err := models.ParseAudioFormat(formatName)
	if err != nil {
		return err
	}

	fetcher, err := r.newFetcher(debug)
	if err != nil {
		return err
	}

	ledger, err := r.newLedger()
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}
	if err := ledger.EnsureExists(); err != nil {
		r.logger.Debug("could not create ledger", "path", ledger.Path(), "error", err)
	}

	logger := shared.WithLogger(r.logger, "run", shared.GenerateID())
	logger.Debug("starting download", "urls", len(urls), "format", format, "ledger", ledger.Path())

	engine := tasks.NewDownloadEngine(fetcher, ledger, tasks.EngineOptions{
		Format:       format,
		OutputName:   r.outputName(cmd.String("output-name"), urls),
		PlaylistName: cmd.String("playlist-name"),
		OutputRoot:   r.config.Download.OutputRoot,
		SingleDir:    r.config.Download.SingleDir,
		PlaylistDir:  r.config.Download.PlaylistDir,
		Limiter:      newLimiter(r.config.Download.ItemsPerMinute),
		Tagger:       r.newTagger(),
		Logger:       shared.WithLogger(logger, "component", "engine"),
	})

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.Probe, tasks.FetchItem:
				r.writeErrln(ui.Help(update.Message))
			case tasks.FetchFailed:
				if debug {
					r.writeErrln(ui.Help(update.Message))
				}
			}
		}
	}()

	tally, err := tasks.RunBatch(ctx, engine, urls, progressCh, func(outcome tasks.BatchOutcome) {
		r.report(outcome, debug)
	})
	close(progressCh)
	<-done

	if err != nil {
		r.logger.Warn("download interrupted", "error", err)
	}

	if cmd.String("url-file") != "" {
		r.writePlainln("%s", ui.Title(tally.String()))
	}
	return nil
}

// report prints the outcome of one URL: status on stdout, errors on stderr.
func (r *Runner) report(outcome tasks.BatchOutcome, debug bool) {
	if outcome.Err == nil {
		r.writePlainln("%s", ui.Status(outcome.Message))
		return
	}

	r.logger.Error("download failed", "url", outcome.URL, "error", outcome.Err)
	for _, line := range ui.ErrorLines(outcome.Err, debug) {
		r.writeErrln(line)
	}
}

// collectURLs reads --url or --url-file. Exactly one must be given.
func (r *Runner) collectURLs(cmd *cli.Command) ([]string, error) {
	url := cmd.String("url")
	urlFile := cmd.String("url-file")

	if url == "" && urlFile == "" {
		return nil, fmt.Errorf("%w: either --url or --url-file must be provided", shared.ErrMissingArgument)
	}
	if url != "" && urlFile != "" {
		return nil, fmt.Errorf("%w: cannot specify both --url and --url-file", shared.ErrInvalidArgument)
	}

	if url != "" {
		return []string{url}, nil
	}

	urls, err := shared.ReadURLFile(urlFile)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		r.logger.Warn("no URLs found in file", "path", urlFile)
	}
	return urls, nil
}

// outputName keeps a custom file name only for a single non-playlist URL.
func (r *Runner) outputName(name string, urls []string) string {
	if name == "" {
		return ""
	}
	if len(urls) != 1 || shared.IsPlaylistURL(urls[0]) {
		r.logger.Warn("--output-name only applies to a single video URL, ignoring", "output-name", name)
		return ""
	}
	return name
}

// newLimiter spaces fetches evenly at perMinute items per minute. Zero disables pacing.
func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
}
