package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/desertthunder/ytaudio/internal/formatter"
	"github.com/desertthunder/ytaudio/internal/shared"
	"github.com/desertthunder/ytaudio/internal/ui"
	"github.com/urfave/cli/v3"
)

// records loads every ledger entry. A ledger that was never created is empty.
func (r *Runner) records(cmd *cli.Command) ([]string, error) {
	if err := r.loadConfig(cmd); err != nil {
		return nil, err
	}

	ledger, err := r.newLedger()
	if err != nil {
		return nil, err
	}

	records, err := ledger.Records()
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	return records, err
}

// LedgerList prints every recorded URL.
func (r *Runner) LedgerList(ctx context.Context, cmd *cli.Command) error {
	records, err := r.records(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, cmd.Bool("pretty"))
	}

	format := formatter.FormatText
	if cmd.Bool("csv") {
		format = formatter.FormatCSV
	}

	data, err := formatter.Export(records, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// LedgerCheck reports whether a URL has been downloaded.
func (r *Runner) LedgerCheck(ctx context.Context, cmd *cli.Command) error {
	url := cmd.String("url")
	if url == "" {
		return fmt.Errorf("%w: --url is required", shared.ErrMissingArgument)
	}

	if err := r.loadConfig(cmd); err != nil {
		return err
	}
	ledger, err := r.newLedger()
	if err != nil {
		return err
	}

	if ledger.Contains(url) {
		return r.writePlainln("%s", ui.Success("Recorded: "+url))
	}
	return r.writePlainln("%s", ui.Warning("Not recorded: "+url))
}

// LedgerPath prints the ledger's location.
func (r *Runner) LedgerPath(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}
	ledger, err := r.newLedger()
	if err != nil {
		return err
	}
	return r.writePlainln("%s", ledger.Path())
}

// LedgerExport writes the ledger to a file as text, CSV or Markdown.
func (r *Runner) LedgerExport(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")
	if output == "" {
		return fmt.Errorf("%w: --output is required", shared.ErrMissingArgument)
	}

	records, err := r.records(cmd)
	if err != nil {
		return err
	}

	if err := formatter.WriteExport(records, cmd.String("format"), output); err != nil {
		return err
	}

	r.logger.Info("ledger exported", "path", output, "records", len(records))
	return r.writePlainln("Exported %d record(s) to %s", len(records), output)
}
