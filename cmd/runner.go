package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytaudio/internal/audio"
	"github.com/desertthunder/ytaudio/internal/repositories"
	"github.com/desertthunder/ytaudio/internal/services"
	"github.com/desertthunder/ytaudio/internal/shared"
	"github.com/desertthunder/ytaudio/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	fetcher   services.MediaFetcher
	tagger    tasks.AlbumTagger
	logger    *log.Logger
	output    io.Writer
	errOutput io.Writer
	mu        sync.Mutex // guards errOutput, shared with the progress printer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	Fetcher   services.MediaFetcher // Defaults to a yt-dlp backed fetcher built per command
	Tagger    tasks.AlbumTagger     // Defaults to [audio.Tagger] when album tagging is enabled
	Logger    *log.Logger
	Output    io.Writer
	ErrOutput io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	return &Runner{
		config:    opts.Config,
		fetcher:   opts.Fetcher,
		tagger:    opts.Tagger,
		logger:    opts.Logger,
		output:    opts.Output,
		errOutput: opts.ErrOutput,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		downloadCommand, ledgerCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig replaces the runner's config with the file named by --config.
//
// A missing file is only an error when the flag was given explicitly.
func (r *Runner) loadConfig(cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil && !cmd.IsSet("config") {
		r.logger.Debug("config file not found, using defaults", "path", path)
		return nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	r.config = config
	r.logger.Debug("loaded config", "path", path)
	return nil
}

// newFetcher returns the injected fetcher or a yt-dlp service built from config.
func (r *Runner) newFetcher(debug bool) (services.MediaFetcher, error) {
	if r.fetcher != nil {
		return r.fetcher, nil
	}

	return services.NewYTDLPService(services.YTDLPOptions{
		Executable: r.config.YTDLP.Executable,
		Format:     r.config.YTDLP.Format,
		Debug:      debug,
		Logger:     shared.WithLogger(r.logger, "component", "ytdlp"),
	})
}

// newLedger opens the ledger configured by [ledger] path, or the one next to the executable.
func (r *Runner) newLedger() (*repositories.FileLedger, error) {
	path := r.config.Ledger.Path
	if path == "" {
		var err error
		if path, err = repositories.DefaultLedgerPath(); err != nil {
			return nil, err
		}
	}

	return repositories.NewFileLedger(path, shared.WithLogger(r.logger, "component", "ledger")), nil
}

// newTagger returns the album tagger, or nil when tagging is disabled.
func (r *Runner) newTagger() tasks.AlbumTagger {
	if !r.config.Tags.PlaylistAlbum {
		return nil
	}
	if r.tagger != nil {
		return r.tagger
	}
	return audio.NewTagger()
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}

// writeErrln writes a line to the error output.
func (r *Runner) writeErrln(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.errOutput, line)
}
