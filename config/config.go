// Package config loads game settings: a TOML file with environment
// overrides. Everything has a compiled-in default; a missing file is not
// an error
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/maze-dash/maze"
)

// Environment variables honored by Load. A .env file in the working
// directory is read first
const (
	EnvConfigPath = "MAZE_DASH_CONFIG"
	EnvSeed       = "MAZE_DASH_SEED"
)

// Tempo controls movement timing in milliseconds
type Tempo struct {
	MoveMs      int `toml:"move_ms"`       // glide span of one move
	DoubleTapMs int `toml:"double_tap_ms"` // window arming auto-move
}

// Difficulty maps a named preset to grid dimensions
type Difficulty struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Player holds the selectable character glyphs
type Player struct {
	Glyphs string `toml:"glyphs"` // one selectable character per rune
}

// Config is the full game configuration
type Config struct {
	Seed         int64        `toml:"seed"` // 0 = random per maze
	Tempo        Tempo        `toml:"tempo"`
	Player       Player       `toml:"player"`
	Difficulties []Difficulty `toml:"difficulties"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		Tempo: Tempo{
			MoveMs:      150,
			DoubleTapMs: 250,
		},
		Player: Player{
			Glyphs: "@☺♦♞",
		},
		Difficulties: []Difficulty{
			{Name: "small", Width: 15, Height: 11},
			{Name: "medium", Width: 25, Height: 17},
			{Name: "large", Width: 35, Height: 23},
			{Name: "xl", Width: 45, Height: 29},
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and
// environment overrides, in that precedence order. An empty path falls
// back to MAZE_DASH_CONFIG
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Run on defaults
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			// Decode into a nil preset slice so a file-defined list fully
			// replaces the defaults instead of merging with them
			fileCfg := *cfg
			fileCfg.Difficulties = nil
			if err := toml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			if fileCfg.Difficulties == nil {
				fileCfg.Difficulties = cfg.Difficulties
			}
			cfg = &fileCfg
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MoveDuration returns the glide span of one move
func (c *Config) MoveDuration() time.Duration {
	return time.Duration(c.Tempo.MoveMs) * time.Millisecond
}

// TapWindow returns the double-tap detection window
func (c *Config) TapWindow() time.Duration {
	return time.Duration(c.Tempo.DoubleTapMs) * time.Millisecond
}

func (c *Config) validate() error {
	if c.Tempo.MoveMs <= 0 || c.Tempo.DoubleTapMs <= 0 {
		return fmt.Errorf("tempo values must be positive, got move=%d double_tap=%d", c.Tempo.MoveMs, c.Tempo.DoubleTapMs)
	}
	if len(c.Player.Glyphs) == 0 {
		return errors.New("player glyph set is empty")
	}
	if len(c.Difficulties) == 0 {
		return errors.New("no difficulty presets configured")
	}
	for _, d := range c.Difficulties {
		if d.Width < maze.MinDimension || d.Height < maze.MinDimension {
			return fmt.Errorf("difficulty %q: %dx%d below maze minimum %d", d.Name, d.Width, d.Height, maze.MinDimension)
		}
	}
	return nil
}
