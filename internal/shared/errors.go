package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrInvalidFormat = fmt.Errorf("invalid audio format")
	ErrURLFile       = fmt.Errorf("unreadable URL file")

	// Media fetcher errors
	ErrProbeFailed   = fmt.Errorf("playlist probe failed")
	ErrEmptyPlaylist = fmt.Errorf("no videos found in playlist")
	ErrFetchFailed   = fmt.Errorf("download failed")
	ErrNoExecutable  = fmt.Errorf("yt-dlp executable not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
