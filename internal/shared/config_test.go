package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Download.AudioFormat != "mp3" {
			t.Errorf("expected audio format mp3, got %s", config.Download.AudioFormat)
		}

		if config.Download.SingleDir != "Single Downloads" {
			t.Errorf("expected single dir 'Single Downloads', got %s", config.Download.SingleDir)
		}

		if config.Download.PlaylistDir != "Playlist Downloads" {
			t.Errorf("expected playlist dir 'Playlist Downloads', got %s", config.Download.PlaylistDir)
		}

		if config.Ledger.Path != "" {
			t.Errorf("expected empty ledger path, got %s", config.Ledger.Path)
		}

		if config.YTDLP.Format != "bestaudio/best" {
			t.Errorf("expected yt-dlp format bestaudio/best, got %s", config.YTDLP.Format)
		}

		if !config.Tags.PlaylistAlbum {
			t.Error("expected playlist album tagging to default on")
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if *config != *defaultConfig {
			t.Errorf("created config doesn't match default: %+v", config)
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[download]
audio_format = "flac"
output_root = "/music"
items_per_minute = 12

[ledger]
path = "/var/lib/ytaudio/ledger.txt"

[ytdlp]
executable = "/usr/local/bin/yt-dlp"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Download.AudioFormat != "flac" {
			t.Errorf("expected audio format flac, got %s", config.Download.AudioFormat)
		}

		if config.Download.OutputRoot != "/music" {
			t.Errorf("expected output root /music, got %s", config.Download.OutputRoot)
		}

		if config.Download.ItemsPerMinute != 12 {
			t.Errorf("expected items_per_minute 12, got %d", config.Download.ItemsPerMinute)
		}

		if config.Ledger.Path != "/var/lib/ytaudio/ledger.txt" {
			t.Errorf("expected custom ledger path, got %s", config.Ledger.Path)
		}

		if config.YTDLP.Executable != "/usr/local/bin/yt-dlp" {
			t.Errorf("expected custom executable, got %s", config.YTDLP.Executable)
		}

		if config.Download.SingleDir != "Single Downloads" {
			t.Errorf("missing keys should keep defaults, got single dir %q", config.Download.SingleDir)
		}

		if config.YTDLP.Format != "bestaudio/best" {
			t.Errorf("missing keys should keep defaults, got format %q", config.YTDLP.Format)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("LoadConfig malformed", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[download\naudio_format ="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
		}{
			{name: "negative rate", mutate: func(c *Config) { c.Download.ItemsPerMinute = -1 }},
			{name: "empty single dir", mutate: func(c *Config) { c.Download.SingleDir = "" }},
			{name: "empty playlist dir", mutate: func(c *Config) { c.Download.PlaylistDir = "" }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
