package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayn2op/grapheditor/termhost"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from GRAPHEDITOR_* environment variables.
type Config struct {
	FPS      int     `envconfig:"FPS" default:"30"`
	Zoom     int     `envconfig:"ZOOM" default:"-3"`
	Width    float64 `envconfig:"WIDTH" default:"800"`
	Height   float64 `envconfig:"HEIGHT" default:"600"`
	LogFile  string  `envconfig:"LOG_FILE" default:"grapheditor.log"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"info"`

	// Comma separated key overrides, for example GRAPHEDITOR_KEY_QUIT="q,ctrl+d".
	// Unset bindings keep their defaults.
	KeyQuit       []string `envconfig:"KEY_QUIT"`
	KeyZoomIn     []string `envconfig:"KEY_ZOOM_IN"`
	KeyZoomOut    []string `envconfig:"KEY_ZOOM_OUT"`
	KeyZoomReset  []string `envconfig:"KEY_ZOOM_RESET"`
	KeySelectTool []string `envconfig:"KEY_SELECT_TOOL"`
	KeyZoomTool   []string `envconfig:"KEY_ZOOM_TOOL"`
	KeyUnselect   []string `envconfig:"KEY_UNSELECT"`
	KeyHelp       []string `envconfig:"KEY_HELP"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("grapheditor", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// KeyMap returns the default key map with the configured overrides applied.
func (c *Config) KeyMap() (*termhost.KeyMap, error) {
	km := termhost.DefaultKeyMap()
	overrides := []struct {
		name string
		keys []string
	}{
		{"quit", c.KeyQuit},
		{"zoom-in", c.KeyZoomIn},
		{"zoom-out", c.KeyZoomOut},
		{"zoom-reset", c.KeyZoomReset},
		{"select-tool", c.KeySelectTool},
		{"zoom-tool", c.KeyZoomTool},
		{"unselect", c.KeyUnselect},
		{"help", c.KeyHelp},
	}
	for _, o := range overrides {
		if len(o.keys) == 0 {
			continue
		}
		if err := km.Rebind(o.name, o.keys...); err != nil {
			return nil, fmt.Errorf("invalid key config: %w", err)
		}
	}
	return km, nil
}
