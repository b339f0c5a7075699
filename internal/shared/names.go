package shared

import (
	"regexp"
	"strings"
)

// UnknownPlaylist is the folder name used when sanitizing leaves nothing usable.
const UnknownPlaylist = "Unknown_Playlist"

var (
	reservedChars = strings.NewReplacer(
		"<", "_", ">", "_", ":", "_", `"`, "_", "/", "_",
		`\`, "_", "|", "_", "?", "_", "*", "_",
	)
	separatorRun = regexp.MustCompile(`[_\s]+`)
)

// SanitizeFolderName maps arbitrary text, typically a playlist title, to a file-system safe folder name.
//
// Reserved characters become underscores, surrounding spaces and dots are trimmed and runs of
// underscores/whitespace collapse to one underscore. A result made only of separators falls back to [UnknownPlaylist].
func SanitizeFolderName(name string) string {
	sanitized := reservedChars.Replace(name)
	sanitized = strings.Trim(sanitized, " .")
	sanitized = separatorRun.ReplaceAllString(sanitized, "_")

	if strings.Trim(sanitized, "_") == "" {
		return UnknownPlaylist
	}
	return sanitized
}
