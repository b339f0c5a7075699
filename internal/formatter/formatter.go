// package formatter renders download ledger records as plain text, CSV or Markdown
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/ytaudio/internal/shared"
)

// Format names accepted by [Export].
const (
	FormatText     = "text"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Formats lists every supported export format.
var Formats = []string{FormatText, FormatCSV, FormatMarkdown}

// kindOf labels a recorded URL as a playlist or a single video.
func kindOf(url string) string {
	if shared.IsPlaylistURL(url) {
		return "playlist"
	}
	return "video"
}

// ExportToCSV converts ledger records to CSV format with columns: Index, URL, Kind
func ExportToCSV(records []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Index", "URL", "Kind"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, url := range records {
		if err := writer.Write([]string{strconv.Itoa(i + 1), url, kindOf(url)}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToText converts ledger records to a numbered plain text list
func ExportToText(records []string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Downloaded URLs: %d\n\n", len(records)))
	for i, url := range records {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, url))
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts ledger records to Markdown, grouping videos and playlists
func ExportToMarkdown(records []string) ([]byte, error) {
	var videos, playlists []string
	for _, url := range records {
		if kindOf(url) == "playlist" {
			playlists = append(playlists, url)
		} else {
			videos = append(videos, url)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("# Download Ledger\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", len(records)))

	for _, section := range []struct {
		heading string
		urls    []string
	}{{"Videos", videos}, {"Playlists", playlists}} {
		if len(section.urls) == 0 {
			continue
		}
		buf.WriteString(fmt.Sprintf("## %s\n\n", section.heading))
		for _, url := range section.urls {
			buf.WriteString(fmt.Sprintf("- <%s>\n", url))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// Export renders records in the named format.
func Export(records []string, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "txt", "":
		return ExportToText(records)
	case FormatCSV:
		return ExportToCSV(records)
	case FormatMarkdown, "md":
		return ExportToMarkdown(records)
	default:
		return nil, fmt.Errorf("%w: unknown export format '%s' (choose from %s)",
			shared.ErrInvalidArgument, format, strings.Join(Formats, ", "))
	}
}

// WriteExport renders records and writes them to path.
func WriteExport(records []string, format, path string) error {
	data, err := Export(records, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
