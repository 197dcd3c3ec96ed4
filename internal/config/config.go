package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all hexwalk demo configuration
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Terrain TerrainConfig `yaml:"terrain"`
	Layout  LayoutConfig  `yaml:"layout"`
	Search  SearchConfig  `yaml:"search"`
}

// MapConfig holds the demo map extent and the route to walk
type MapConfig struct {
	Radius    int `yaml:"radius"` // hex disc radius around the origin
	StartCol  int `yaml:"start_col"`
	StartRow  int `yaml:"start_row"`
	GoalCol   int `yaml:"goal_col"`
	GoalRow   int `yaml:"goal_row"`
	ViewRange int `yaml:"view_range"` // visibility radius from the start hex
}

// TerrainConfig holds the noise parameters for the generated cost field
type TerrainConfig struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	WaterLevel  float64 `yaml:"water_level"` // noise below this is impassable
	MaxCost     float64 `yaml:"max_cost"`    // entry cost at noise = 1.0
}

// LayoutConfig holds the pixel transform settings
type LayoutConfig struct {
	Orientation string  `yaml:"orientation"` // "pointy" or "flat"
	SizeX       float64 `yaml:"size_x"`
	SizeY       float64 `yaml:"size_y"`
	OriginX     float64 `yaml:"origin_x"`
	OriginY     float64 `yaml:"origin_y"`
}

// SearchConfig holds pathfinding limits
type SearchConfig struct {
	MaxDistance float64 `yaml:"max_distance"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Map.Radius == 0 {
		cfg.Map.Radius = 12
	}
	if cfg.Map.ViewRange == 0 {
		cfg.Map.ViewRange = 6
	}
	if cfg.Terrain.Octaves == 0 {
		cfg.Terrain.Octaves = 3
	}
	if cfg.Terrain.Frequency == 0 {
		cfg.Terrain.Frequency = 0.15
	}
	if cfg.Terrain.Persistence == 0 {
		cfg.Terrain.Persistence = 0.5
	}
	if cfg.Terrain.MaxCost == 0 {
		cfg.Terrain.MaxCost = 5
	}
	if cfg.Layout.Orientation == "" {
		cfg.Layout.Orientation = "pointy"
	}
	if cfg.Layout.SizeX == 0 {
		cfg.Layout.SizeX = 32
	}
	if cfg.Layout.SizeY == 0 {
		cfg.Layout.SizeY = 32
	}
	if cfg.Search.MaxDistance == 0 {
		cfg.Search.MaxDistance = 50
	}

	if cfg.Layout.Orientation != "pointy" && cfg.Layout.Orientation != "flat" {
		return nil, fmt.Errorf("unknown layout orientation %q", cfg.Layout.Orientation)
	}
	if cfg.Map.Radius < 0 {
		return nil, fmt.Errorf("map radius must be non-negative, got %d", cfg.Map.Radius)
	}

	return &cfg, nil
}
