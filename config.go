package panes

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config sets up a session in Init.
type Config struct {
	// X and Y are the global origin every region is placed relative to.
	X float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y float64 `json:"y,omitempty" yaml:"y,omitempty"`

	// Width and Height are the reference size of the global frame. Leave
	// both zero to disable GlobalResize.
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`

	// Classes are added to every region node after the base "panes" class.
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`

	// Placement overrides NestedPlacement.
	Placement PlacementFunc `json:"-" yaml:"-"`
}

// ParseConfig decodes a JSON session config such as
//
//	{"x": 0, "y": 0, "width": 1280, "height": 720, "classes": ["hud"]}
func ParseConfig(jsonData []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.validate()
}

// ParseConfigYAML decodes the YAML form of a session config:
//
//	width: 1280
//	height: 720
//	classes: [hud]
func ParseConfigYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.validate()
}

func (cfg Config) validate() (Config, error) {
	if (cfg.Width > 0) != (cfg.Height > 0) {
		return Config{}, fmt.Errorf("parse config: width and height must be set together")
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Config{}, fmt.Errorf("parse config: negative reference size %gx%g", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
