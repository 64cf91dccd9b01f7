package panes

import (
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures an Application and its first window. It can be read
// from panes.toml or panes.yaml.
type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// WindowConfig holds the defaults for windows created by NewWindow.
type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	// Background as #rrggbb or #rrggbbaa
	Background string `toml:"background" yaml:"background"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	// One of trace, debug, info, warn, error
	Level string `toml:"level" yaml:"level"`
	// text or json
	Format string `toml:"format" yaml:"format"`
}

// Config file formats accepted by ParseConfig.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:      "panes",
			Width:      800,
			Height:     600,
			Background: "#202020",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads the configuration at path, choosing the decoder by file
// extension. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), errors.Wrapf(err, "failed to read %s", path)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return DefaultConfig(), errors.Errorf("unsupported config file %s", path)
	}

	cfg, err := ParseConfig(data, format)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format. Fields left empty are
// filled from DefaultConfig.
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), errors.Wrap(err, "toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), errors.Wrap(err, "yaml")
		}
	default:
		return DefaultConfig(), errors.Errorf("unknown config format %q", format)
	}

	cfg.applyDefaults()
	if _, err := ParseColor(cfg.Window.Background); err != nil {
		return cfg, err
	}
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return cfg, errors.Errorf("window size %dx%d is negative", cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.Width == 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Background == "" {
		c.Window.Background = d.Window.Background
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// BackgroundColor returns the parsed window background. An invalid value
// falls back to opaque black.
func (c WindowConfig) BackgroundColor() color.RGBA {
	rgba, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return rgba
}

// ParseColor parses #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, errors.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
