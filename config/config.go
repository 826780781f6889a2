// Package config handles configuration loading and validation for quill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the full quill configuration.
type Config struct {
	PostProcessing PostProcessing `toml:"post_processing"`
}

// PostProcessing configures how transcribed text is written into the
// focused window.
type PostProcessing struct {
	// InputMethod selects the typing backend: direct-key, clipboard,
	// external-type, or external-stream.
	InputMethod string `toml:"input_method"`

	// WritingKeyPressDelay is the pause after each synthesized keystroke,
	// in seconds.
	WritingKeyPressDelay float64 `toml:"writing_key_press_delay"`

	// TypeCommand is the one-shot typing tool used by external-type.
	TypeCommand string `toml:"type_command"`

	// StreamCommand is the persistent typing tool used by external-stream.
	StreamCommand string `toml:"stream_command"`
}

func Default() *Config {
	return &Config{
		PostProcessing: PostProcessing{
			InputMethod:          "direct-key",
			WritingKeyPressDelay: 0.0,
			TypeCommand:          "ydotool",
			StreamCommand:        "dotool",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error: the defaults are returned so quill works without any config.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	pp := c.PostProcessing
	if pp.WritingKeyPressDelay < 0 {
		return fmt.Errorf("post_processing.writing_key_press_delay must be >= 0, got %v", pp.WritingKeyPressDelay)
	}
	if pp.TypeCommand == "" {
		return fmt.Errorf("post_processing.type_command must not be empty")
	}
	if pp.StreamCommand == "" {
		return fmt.Errorf("post_processing.stream_command must not be empty")
	}
	return nil
}

// Delay converts the configured per-keystroke delay to a duration.
func (pp PostProcessing) Delay() time.Duration {
	return time.Duration(pp.WritingKeyPressDelay * float64(time.Second))
}

// ResolvePath determines the config file location.
func ResolvePath(flagPath string) (string, error) {
	// Priority 1: explicit path from the caller
	if flagPath != "" {
		return absPath(flagPath)
	}

	// Priority 2: QUILL_CONFIG environment variable
	if envPath := os.Getenv("QUILL_CONFIG"); envPath != "" {
		return absPath(envPath)
	}

	// Priority 3: OS-specific config directory
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quill", "config.toml"), nil
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}
