// Purpose: Load and validate the optional YAML configuration file.
// Exports: Config, DefaultConfig, LoadConfig, ConfigPath, ErrInvalidConfig.
// Role: Supplies defaults that command-line flags may override.
// Invariants: A missing default file yields DefaultConfig; a missing explicit file is an error.
// Notes: Lookup order is --config, $STYLEMARK_CONFIG, then <user config dir>/stylemark/config.yaml.
package stylemark

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sandover/stylemark/internal/monitor"
	"gopkg.in/yaml.v3"
)

const configEnv = "STYLEMARK_CONFIG"

// Color modes accepted in the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config is the on-disk configuration.
type Config struct {
	Level       string `yaml:"level"`
	BorderColor string `yaml:"border_color"`
	Width       int    `yaml:"width"`
	Color       string `yaml:"color"`
	CodeTheme   string `yaml:"code_theme"`
}

func DefaultConfig() Config {
	return Config{
		Level:       monitor.LevelInfo.String(),
		BorderColor: monitor.YellowHex,
		Color:       ColorAuto,
		CodeTheme:   monitor.DefaultCodeTheme,
	}
}

// ConfigPath resolves which file to read. explicit reports whether the path
// came from the flag or the environment rather than the default location.
func ConfigPath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(configEnv); env != "" {
		return env, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "stylemark", "config.yaml"), false
}

// LoadConfig reads the config named by flagPath (or the default location),
// fills unset fields from DefaultConfig and validates the result.
func LoadConfig(flagPath string) (Config, error) {
	cfg := DefaultConfig()
	path, explicit := ConfigPath(flagPath)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	cfg = cfg.merge(file)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// merge returns c with every non-zero field of other applied.
func (c Config) merge(other Config) Config {
	if other.Level != "" {
		c.Level = other.Level
	}
	if other.BorderColor != "" {
		c.BorderColor = other.BorderColor
	}
	if other.Width != 0 {
		c.Width = other.Width
	}
	if other.Color != "" {
		c.Color = strings.ToLower(strings.TrimSpace(other.Color))
	}
	if other.CodeTheme != "" {
		c.CodeTheme = other.CodeTheme
	}
	return c
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := monitor.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: level: %v", ErrInvalidConfig, err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto|always|never)", ErrInvalidConfig, c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0, got %d", ErrInvalidConfig, c.Width)
	}
	if strings.HasPrefix(c.BorderColor, "#") && !hexColorRe.MatchString(c.BorderColor) {
		return fmt.Errorf("%w: border_color %q is not #rrggbb", ErrInvalidConfig, c.BorderColor)
	}
	return nil
}
