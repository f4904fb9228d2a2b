package ecs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig is the declarative shape a demo or test harness loads before
// constructing a World: a log level, a list of stage names, and tuning
// knobs for the collaborator plugins layered on top of the core (window
// size, asset roots). The ecs package itself reads none of these fields;
// cmd/demo applies LogLevel, Window and Assets. StageTrace is parsed but
// not read anywhere in this repository.
type WorldConfig struct {
	LogLevel   string   `yaml:"log_level"`
	StageTrace []string `yaml:"stage_trace"`

	Window struct {
		Title  string `yaml:"title"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"window"`

	Assets struct {
		TextureRoot string `yaml:"texture_root"`
		AudioRoot   string `yaml:"audio_root"`
	} `yaml:"assets"`
}

// LoadWorldConfig reads and parses a YAML world configuration file.
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ecs: reading world config: %w", err)
	}
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ecs: parsing world config: %w", err)
	}
	return &cfg, nil
}
