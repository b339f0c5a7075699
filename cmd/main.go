package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/desertthunder/ytaudio/internal/shared"
	"github.com/desertthunder/ytaudio/internal/ui"
)

// configErrors are printed as a single red line and exit with status 1.
var configErrors = []error{
	shared.ErrMissingConfig,
	shared.ErrInvalidConfig,
	shared.ErrInvalidFormat,
	shared.ErrURLFile,
	shared.ErrNoExecutable,
	shared.ErrMissingArgument,
	shared.ErrInvalidArgument,
}

func isConfigError(err error) bool {
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	runner := NewRunner(RunnerOpts{Config: config, Logger: logger})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(runner).Run(ctx, os.Args); err != nil {
		if isConfigError(err) {
			runner.writeErrln(ui.Failure("❌ Error: " + err.Error()))
			stop()
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
