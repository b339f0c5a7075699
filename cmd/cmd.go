// submodule cmd contains command definitions
package main

import (
	"fmt"

	"github.com/desertthunder/ytaudio/internal/formatter"
	"github.com/desertthunder/ytaudio/internal/models"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// newApp builds the root command.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "ytaudio",
		Usage:    "Download YouTube videos and playlists as audio files",
		Version:  "0.1.0",
		Commands: r.register(),
	}
}

// downloadCommand handles single video, playlist and batch downloads
func downloadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "download",
		Aliases: []string{"dl"},
		Usage:   "Download audio from a YouTube video or playlist URL",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "YouTube video or playlist URL",
			},
			&cli.StringFlag{
				Name:    "url-file",
				Aliases: []string{"f"},
				Usage:   "File with one URL per line (# starts a comment)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: fmt.Sprintf("Audio format (%s), defaults to the configured format", models.FormatNames()),
			},
			&cli.StringFlag{
				Name:  "output-name",
				Usage: "Custom file name for a single video, without extension",
			},
			&cli.StringFlag{
				Name:  "playlist-name",
				Usage: "Custom folder name for playlists",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging and verbose yt-dlp output",
			},
		},
		Action: r.Download,
	}
}

// ledgerCommand inspects the record of downloaded URLs
func ledgerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "ledger",
		Usage: "Inspect the record of downloaded URLs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every downloaded URL",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.LedgerList,
			},
			{
				Name:  "check",
				Usage: "Report whether a URL has been downloaded",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "url",
						Aliases: []string{"u"},
						Usage:   "URL to look up",
					},
				},
				Action: r.LedgerCheck,
			},
			{
				Name:   "path",
				Usage:  "Print the ledger file location",
				Flags:  []cli.Flag{configFlag()},
				Action: r.LedgerPath,
			},
			{
				Name:  "export",
				Usage: "Export the ledger to a file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: fmt.Sprintf("Export format (%v)", formatter.Formats),
						Value: formatter.FormatText,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Destination file",
					},
				},
				Action: r.LedgerExport,
			},
		},
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write config.toml with default settings",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
		},
	}
}
