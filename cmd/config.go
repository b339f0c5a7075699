package main

import (
	"context"

	"github.com/desertthunder/ytaudio/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlainln("Created %s", path)
}
