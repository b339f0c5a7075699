package formatter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/ytaudio/internal/shared"
	tu "github.com/desertthunder/ytaudio/internal/testing"
)

var records = []string{
	"https://www.youtube.com/watch?v=a",
	"https://www.youtube.com/playlist?list=PL1",
	"https://www.youtube.com/watch?v=b,c",
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(records)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Index,URL,Kind\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,https://www.youtube.com/watch?v=a,video\n") {
			t.Errorf("CSV missing first record, got: %s", output)
		}
		if !strings.Contains(output, "2,https://www.youtube.com/playlist?list=PL1,playlist\n") {
			t.Errorf("CSV missing playlist record, got: %s", output)
		}
		if !strings.Contains(output, `3,"https://www.youtube.com/watch?v=b,c",video`) {
			t.Errorf("CSV should quote URLs with commas, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(records)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Downloaded URLs: 3\n\n") {
			t.Errorf("text missing count header, got: %s", output)
		}
		if !strings.Contains(output, "2. https://www.youtube.com/playlist?list=PL1\n") {
			t.Errorf("text missing numbered record, got: %s", output)
		}
	})

	t.Run("ExportToText empty", func(t *testing.T) {
		data, _ := ExportToText(nil)
		if string(data) != "Downloaded URLs: 0\n\n" {
			t.Errorf("unexpected output %q", data)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(records)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Download Ledger\n",
			"**Total**: 3",
			"## Videos\n\n- <https://www.youtube.com/watch?v=a>\n",
			"## Playlists\n\n- <https://www.youtube.com/playlist?list=PL1>\n",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("ExportToMarkdown omits empty sections", func(t *testing.T) {
		data, _ := ExportToMarkdown(records[:1])
		if strings.Contains(string(data), "## Playlists") {
			t.Errorf("expected no playlist section, got: %s", data)
		}
	})
}

func TestExport(t *testing.T) {
	tests := []struct {
		format string
		prefix string
	}{
		{"text", "Downloaded URLs"},
		{"", "Downloaded URLs"},
		{"CSV", "Index,URL,Kind"},
		{"md", "# Download Ledger"},
		{"markdown", "# Download Ledger"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := Export(records, tt.format)
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, data)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := Export(records, "xml")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.csv")

		if err := WriteExport(records, "csv", path); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		if content := tu.MustReadFile(t, path); !strings.HasPrefix(content, "Index,URL,Kind") {
			t.Errorf("unexpected file content %q", content)
		}
	})

	t.Run("invalid format writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.xml")

		if err := WriteExport(records, "xml", path); err == nil {
			t.Fatal("expected error")
		}
		tu.AssertFileNotExists(t, path)
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "ledger.txt")

		if err := WriteExport(records, "text", path); err == nil {
			t.Error("expected write error")
		}
	})
}
