package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a download run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	Classify Phase = iota
	Probe
	SkipItem
	FetchItem
	FetchFailed
	Complete
)

func (p Phase) String() string {
	switch p {
	case Classify:
		return "classify"
	case Probe:
		return "probe"
	case SkipItem:
		return "skip_item"
	case FetchItem:
		return "fetch_item"
	case FetchFailed:
		return "fetch_failed"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func classifyUpdate(url string, playlist bool) ProgressUpdate {
	kind := "single video"
	if playlist {
		kind = "playlist"
	}
	return ProgressUpdate{
		Phase:   Classify,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Detected %s: %s", kind, url),
		Data:    playlist,
	}
}

func probingUpdate(url string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Probe,
		Step:    0,
		Total:   1,
		Message: fmt.Sprintf("Fetching playlist contents: %s", url),
	}
}

func probedUpdate(plan *playlistPlan) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Probe,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found playlist: %s (%d new, %d already downloaded)", plan.folder, len(plan.pending), plan.skipped),
		Data:    plan.descriptor,
	}
}

func skipItemUpdate(url string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SkipItem,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Already downloaded: %s", url),
	}
}

func fetchItemUpdate(step, total int, url string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchItem,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Downloading %s", step, total, url),
	}
}

func fetchFailedUpdate(step, total int, url string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, url, err),
	}
}

func completeUpdate(result *DownloadResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Complete,
		Step:    1,
		Total:   1,
		Message: result.Message,
		Data:    result,
	}
}
