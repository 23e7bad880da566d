// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Validation errors returned by Config.Validate.
var (
	ErrInvalidGrid     = errors.New("grid dimensions must be positive")
	ErrInvalidTickRate = errors.New("tick rate must be positive")
	ErrInvalidStart    = errors.New("start cell is outside the grid")
	ErrInvalidPolicy   = errors.New("unknown no-path policy")
	ErrInvalidHeading  = errors.New("unknown start direction")
)

// No-path policies.
const (
	PolicyHold = "hold" // keep the last direction and keep moving
	PolicyHalt = "halt" // stay in place for the tick
)

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Game      GameConfig      `yaml:"game"`
	Storage   StorageConfig   `yaml:"storage"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the graphical front end.
type ScreenConfig struct {
	TargetFPS       int `yaml:"target_fps"`
	CellSize        int `yaml:"cell_size"`         // pixels per grid cell
	HUDHeight       int `yaml:"hud_height"`        // score strip above the grid
	ButtonBarHeight int `yaml:"button_bar_height"` // button strip below the grid
}

// GridConfig holds the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig holds run rules.
type GameConfig struct {
	TickRate       float64 `yaml:"tick_rate"` // simulation ticks per second
	StartX         int     `yaml:"start_x"`
	StartY         int     `yaml:"start_y"`
	StartDirection string  `yaml:"start_direction"` // up, down, left, right
	Obstacles      int     `yaml:"obstacles"`       // placed once per run
	NoPathPolicy   string  `yaml:"no_path_policy"`  // hold or halt
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsInterval int `yaml:"stats_interval"` // ticks between perf log lines
	PerfWindow    int `yaml:"perf_window"`    // samples kept per timed section
}

// AudioConfig holds the eat chime settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	ToneHz     float64 `yaml:"tone_hz"`
	DurationMs int     `yaml:"duration_ms"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickInterval time.Duration // 1 / TickRate
	WindowWidth  int32         // Grid.Width * CellSize
	WindowHeight int32         // HUD + grid + button bar
	GridTop      int32         // y offset of the first grid row
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Grid.Width, c.Grid.Height)
	}
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTickRate, c.Game.TickRate)
	}
	if c.Game.StartX < 0 || c.Game.StartX >= c.Grid.Width || c.Game.StartY < 0 || c.Game.StartY >= c.Grid.Height {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, c.Game.StartX, c.Game.StartY)
	}
	switch c.Game.NoPathPolicy {
	case PolicyHold, PolicyHalt:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, c.Game.NoPathPolicy)
	}
	switch c.Game.StartDirection {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHeading, c.Game.StartDirection)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickInterval = time.Duration(float64(time.Second) / c.Game.TickRate)
	c.Derived.WindowWidth = int32(c.Grid.Width * c.Screen.CellSize)
	c.Derived.GridTop = int32(c.Screen.HUDHeight)
	c.Derived.WindowHeight = int32(c.Screen.HUDHeight + c.Grid.Height*c.Screen.CellSize + c.Screen.ButtonBarHeight)

	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 120
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
