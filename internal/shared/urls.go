package shared

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// playlistMarkers are the lower-cased substrings that mark playlist intent.
//
// Watch URLs carrying an incidental list= parameter (auto-generated mixes) count as playlists,
// since the platform expands them to multiple videos.
var playlistMarkers = []string{"playlist?", "&list=", "?list="}

// IsPlaylistURL reports whether url refers to a playlist. No well-formedness validation is done.
func IsPlaylistURL(url string) bool {
	lower := strings.ToLower(url)
	for _, marker := range playlistMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ParseURLList reads newline-delimited URLs, skipping blank lines and lines starting with #.
func ParseURLList(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLFile, err)
	}
	return urls, nil
}

// ReadURLFile opens path and parses it with [ParseURLList].
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLFile, err)
	}
	defer f.Close()

	return ParseURLList(f)
}
