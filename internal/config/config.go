// Package config loads user settings for the wireframe CLI.
//
// Settings come from, in increasing priority: built-in defaults, the TOML
// file at ~/.config/wireframe/config.toml (or $WIREFRAME_CONFIG), and
// WIREFRAME_* environment variables such as WIREFRAME_EDITOR_SNAP_TO_GRID.
// Command-line flags override all of them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/wireframe/pkg/canvas"
	"github.com/matzehuels/wireframe/pkg/editor"
)

// Config holds application configuration.
type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	Render RenderConfig `mapstructure:"render"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// EditorConfig holds the initial editor settings.
type EditorConfig struct {
	SnapToGrid bool    `mapstructure:"snap_to_grid"`
	GridSize   float64 `mapstructure:"grid_size"`
	Background string  `mapstructure:"background"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	Formats []string `mapstructure:"formats"`
	Engine  string   `mapstructure:"engine"`
	Scale   float64  `mapstructure:"scale"`
	Width   float64  `mapstructure:"width"`
	Height  float64  `mapstructure:"height"`
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	Disabled bool          `mapstructure:"disabled"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// EditorSettings converts the editor section into an [editor.Config].
func (c Config) EditorSettings() editor.Config {
	return editor.Config{
		SnapToGrid: c.Editor.SnapToGrid,
		GridSize:   c.Editor.GridSize,
		Background: c.Editor.Background,
	}
}

// DefaultPath returns where Load looks when $WIREFRAME_CONFIG is unset.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wireframe", "config.toml")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "wireframe", "config.toml")
}

// Load reads configuration from path, or from $WIREFRAME_CONFIG or
// [DefaultPath] when path is empty. A missing file is not an error; a file
// that exists but cannot be parsed is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("editor.snap_to_grid", false)
	v.SetDefault("editor.grid_size", canvas.DefaultGridSize)
	v.SetDefault("editor.background", canvas.DefaultBackground)
	v.SetDefault("render.formats", []string{"svg"})
	v.SetDefault("render.engine", "native")
	v.SetDefault("render.scale", 2.0)
	v.SetDefault("render.width", 800.0)
	v.SetDefault("render.height", 600.0)
	v.SetDefault("cache.disabled", false)
	v.SetDefault("cache.ttl", 7*24*time.Hour)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("WIREFRAME_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("WIREFRAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
