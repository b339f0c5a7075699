package tasks

import (
	"context"
	"fmt"
)

// BatchTally counts the outcomes of a [RunBatch] call.
type BatchTally struct {
	Succeeded int
	Skipped   int
	Failed    int
}

func (t BatchTally) String() string {
	return fmt.Sprintf("Summary: %d succeeded, %d skipped, %d failed", t.Succeeded, t.Skipped, t.Failed)
}

// BatchOutcome is reported once per URL processed by [RunBatch].
type BatchOutcome struct {
	URL     string
	Message string
	Err     error
}

// Downloader is the part of [DownloadEngine] used by [RunBatch].
type Downloader interface {
	DownloadAudio(ctx context.Context, url string, progress chan<- ProgressUpdate) (string, error)
}

// RunBatch downloads urls in order. Failures are tallied and never stop later URLs.
//
// report, when non-nil, is called after each URL. A cancelled context stops the batch and
// the remaining URLs are not attempted.
func RunBatch(ctx context.Context, d Downloader, urls []string, progress chan<- ProgressUpdate, report func(BatchOutcome)) (BatchTally, error) {
	var tally BatchTally
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		msg, err := d.DownloadAudio(ctx, url, progress)
		switch {
		case err != nil:
			tally.Failed++
		case IsSkipMessage(msg):
			tally.Skipped++
		default:
			tally.Succeeded++
		}

		if report != nil {
			report(BatchOutcome{URL: url, Message: msg, Err: err})
		}
	}
	return tally, nil
}
