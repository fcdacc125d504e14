package internal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ConfigEnv names the environment variable holding the default config path.
const ConfigEnv = "DTCIPHER_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the CLI defaults read from a TOML file. Keys are never read
// from the config file.
//
// Example:
//
//	block_size = 5
//	color = "auto"
//	qr = false
//	verify = true
//	strict = false
//	log_level = "info"
type Config struct {
	BlockSize int    `toml:"block_size"`
	Color     string `toml:"color"`
	QR        bool   `toml:"qr"`
	Verify    bool   `toml:"verify"`
	Strict    bool   `toml:"strict"`
	LogLevel  string `toml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		BlockSize: BlockSize,
		Color:     ColorAuto,
		LogLevel:  "info",
	}
}

// ParseConfig decodes TOML content on top of DefaultConfig and validates it.
// Unknown keys are rejected.
func ParseConfig(content []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the config file at path. An empty path yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfig(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(b)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.BlockSize < 0 {
		return fmt.Errorf("%w: block_size must be >= 0, got %d", ErrInvalidConfig, c.BlockSize)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be one of auto, always, never; got %q", ErrInvalidConfig, c.Color)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
