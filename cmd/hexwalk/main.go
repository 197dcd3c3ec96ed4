package main

import (
	"log"
	"math"
	"os"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-games/hexkernel/hex"
	"github.com/gravitas-games/hexkernel/internal/config"
	"github.com/gravitas-games/hexkernel/layout"
	"github.com/gravitas-games/hexkernel/search"
)

func main() {
	log.Println("Starting hexwalk demo...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexwalk.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded from %s", configPath)
	log.Printf("Map radius %d, terrain seed %d", cfg.Map.Radius, cfg.Terrain.Seed)

	origin := hex.FromAxial(0, 0)
	noise := opensimplex.NewNormalized(cfg.Terrain.Seed)

	// terrain height in [0,1] per hex; below water level is impassable
	elevation := func(h hex.Hex) float64 {
		return octaveNoise(noise, float64(h.Q), float64(h.R),
			cfg.Terrain.Octaves, cfg.Terrain.Frequency, cfg.Terrain.Persistence)
	}
	cost := func(from, to hex.Hex) float64 {
		if origin.DistanceTo(to) > cfg.Map.Radius {
			return -1
		}
		e := elevation(to)
		if e < cfg.Terrain.WaterLevel {
			return -1
		}
		return 1 + e*(cfg.Terrain.MaxCost-1)
	}

	start := hex.FromOffset(cfg.Map.StartCol, cfg.Map.StartRow)
	goal := hex.FromOffset(cfg.Map.GoalCol, cfg.Map.GoalRow)
	log.Printf("Routing from %v to %v (distance %d)", start, goal, start.DistanceTo(goal))

	path := search.FindPath(start, goal, cost,
		search.WithMaxDistance(cfg.Search.MaxDistance))
	if len(path) == 0 {
		log.Printf("No route found within cost %g", cfg.Search.MaxDistance)
	} else {
		log.Printf("Route found: %d hexes, total cost %.2f", len(path), search.PathCost(path, cost))
		for i, h := range path {
			col, row := h.ToOffset()
			log.Printf("  step %2d: hex %v (offset %d,%d) elevation %.2f", i, h, col, row, elevation(h))
		}
	}

	blocked := func(h hex.Hex) bool { return elevation(h) < cfg.Terrain.WaterLevel }
	visible := search.VisibleHexes(start, cfg.Map.ViewRange, blocked)
	log.Printf("Visible from start within range %d: %d of %d hexes",
		cfg.Map.ViewRange, len(visible), len(start.Range(cfg.Map.ViewRange)))

	lay := layout.Layout{
		Orientation: orientationByName(cfg.Layout.Orientation),
		Size:        layout.Point{X: cfg.Layout.SizeX, Y: cfg.Layout.SizeY},
		Origin:      layout.Point{X: cfg.Layout.OriginX, Y: cfg.Layout.OriginY},
	}
	bounds := lay.Bounds(path)
	log.Printf("Route pixel bounds: %.1f x %.1f at (%.1f, %.1f)",
		bounds.Width(), bounds.Height(), bounds.Min.X, bounds.Min.Y)

	center := lay.HexToPixel(goal)
	log.Printf("Goal center pixel (%.1f, %.1f) picks back to %v", center.X, center.Y, lay.PixelToHex(center))
}

func orientationByName(name string) layout.Orientation {
	if name == "flat" {
		return layout.Flat
	}
	return layout.Pointy
}

// octaveNoise layers several noise samples at increasing frequency and
// decreasing amplitude, normalized back to [0,1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	freq := frequency
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*freq, y*freq) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		freq *= 2
	}
	if maxValue == 0 {
		return 0
	}
	return math.Max(0, math.Min(1, total/maxValue))
}
