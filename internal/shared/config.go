package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Download DownloadConfig `toml:"download"`
	Ledger   LedgerConfig   `toml:"ledger"`
	YTDLP    YTDLPConfig    `toml:"ytdlp"`
	Tags     TagsConfig     `toml:"tags"`
}

// DownloadConfig contains output layout and pacing settings.
type DownloadConfig struct {
	AudioFormat    string `toml:"audio_format"`
	OutputRoot     string `toml:"output_root"`
	SingleDir      string `toml:"single_dir"`
	PlaylistDir    string `toml:"playlist_dir"`
	ItemsPerMinute int    `toml:"items_per_minute"`
}

// LedgerConfig locates the download ledger.
type LedgerConfig struct {
	Path string `toml:"path"`
}

// YTDLPConfig contains settings passed through to yt-dlp.
type YTDLPConfig struct {
	Executable string `toml:"executable"`
	Format     string `toml:"format"`
}

// TagsConfig toggles post-download tagging.
type TagsConfig struct {
	PlaylistAlbum bool `toml:"playlist_album"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports configuration values that can never work.
//
// The audio format is checked by the caller against the supported codec list.
func (c *Config) Validate() error {
	if c.Download.SingleDir == "" || c.Download.PlaylistDir == "" {
		return fmt.Errorf("%w: download directories must not be empty", ErrInvalidConfig)
	}
	if c.Download.ItemsPerMinute < 0 {
		return fmt.Errorf("%w: items_per_minute must be >= 0, got %d", ErrInvalidConfig, c.Download.ItemsPerMinute)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: config file already exists at %s", ErrInvalidArgument, path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
