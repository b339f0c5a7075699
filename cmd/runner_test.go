package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/desertthunder/ytaudio/internal/shared"
	tu "github.com/desertthunder/ytaudio/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			errOutput := &bytes.Buffer{}
			fetcher := &tu.MockFetcher{}
			tagger := &tu.MockTagger{}

			runner := NewRunner(RunnerOpts{
				Config:    config,
				Logger:    logger,
				Output:    output,
				ErrOutput: errOutput,
				Fetcher:   fetcher,
				Tagger:    tagger,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.errOutput != errOutput {
				t.Error("expected errOutput to be set")
			}
			if runner.fetcher != fetcher {
				t.Error("expected fetcher to be set")
			}
			if runner.tagger != tagger {
				t.Error("expected tagger to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil outputs uses std streams", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output == nil || runner.errOutput == nil {
				t.Error("expected default outputs to be set")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON([]string{"a", "b"}, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `["a","b"]` + "\n"
			if result := output.String(); result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("writePlainln appends newline", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlainln("%d item(s)", 2); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "2 item(s)\n" {
				t.Errorf("expected '2 item(s)\\n', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			names[cmd.Name] = true
		}

		for _, want := range []string{"download", "ledger", "config"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})

	t.Run("newTagger", func(t *testing.T) {
		t.Run("disabled by config", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Tags.PlaylistAlbum = false
			runner := NewRunner(RunnerOpts{Config: config, Tagger: &tu.MockTagger{}})

			if runner.newTagger() != nil {
				t.Error("expected no tagger")
			}
		})

		t.Run("defaults to id3 tagger", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.newTagger() == nil {
				t.Error("expected default tagger")
			}
		})
	})

	t.Run("newFetcher", func(t *testing.T) {
		t.Run("returns injected fetcher", func(t *testing.T) {
			fetcher := &tu.MockFetcher{}
			runner := NewRunner(RunnerOpts{Fetcher: fetcher})

			got, err := runner.newFetcher(false)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != fetcher {
				t.Error("expected injected fetcher")
			}
		})

		t.Run("missing executable", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.YTDLP.Executable = "/nonexistent/yt-dlp"
			runner := NewRunner(RunnerOpts{Config: config})

			_, err := runner.newFetcher(false)
			if !errors.Is(err, shared.ErrNoExecutable) {
				t.Errorf("expected ErrNoExecutable, got %v", err)
			}
		})
	})
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("%w: bad", shared.ErrInvalidFormat), true},
		{fmt.Errorf("%w: gone", shared.ErrMissingConfig), true},
		{fmt.Errorf("%w: no url", shared.ErrMissingArgument), true},
		{shared.ErrNoExecutable, true},
		{errors.New("boom"), false},
		{fmt.Errorf("%w: x", shared.ErrFetchFailed), false},
	}

	for _, tt := range tests {
		if got := isConfigError(tt.err); got != tt.want {
			t.Errorf("isConfigError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
