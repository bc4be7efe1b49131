package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/leaflet/internal/input"
	"github.com/san-kum/leaflet/internal/trace"
)

const (
	DefaultAlgorithm = "bubble-sort"
	DefaultSpeedMs   = 1000
	MinSpeedMs       = 100
	MaxSpeedMs       = 3000
	DefaultDataDir   = ".leaflet"
	DefaultTheme     = "autumn"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Algorithm string       `yaml:"algorithm"`
	Input     []float64    `yaml:"input,omitempty,flow"`
	SpeedMs   int          `yaml:"speed_ms"`
	Random    RandomConfig `yaml:"random"`
	Seed      int64        `yaml:"seed"`
	DataDir   string       `yaml:"data_dir"`
	Theme     string       `yaml:"theme"`
}

// RandomConfig sizes the sequence generated when no input is given.
type RandomConfig struct {
	Count int `yaml:"count"`
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		SpeedMs:   DefaultSpeedMs,
		Random: RandomConfig{
			Count: input.DefaultCount,
			Min:   input.DefaultMin,
			Max:   input.DefaultMax,
		},
		DataDir: defaultDataDir(),
		Theme:   DefaultTheme,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDataDir
	}
	return filepath.Join(home, DefaultDataDir)
}

// Load reads path on top of the defaults, so a partial file only overrides
// the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := trace.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %v", ErrInvalid, err)
	}
	if err := trace.CheckFinite(c.Input); err != nil {
		return fmt.Errorf("%w: input: %w", ErrInvalid, err)
	}
	if c.SpeedMs < MinSpeedMs || c.SpeedMs > MaxSpeedMs {
		return fmt.Errorf("%w: speed_ms %d outside [%d, %d]", ErrInvalid, c.SpeedMs, MinSpeedMs, MaxSpeedMs)
	}
	if c.Random.Count < 0 || c.Random.Max < c.Random.Min {
		return fmt.Errorf("%w: random count=%d min=%d max=%d", ErrInvalid, c.Random.Count, c.Random.Min, c.Random.Max)
	}
	return nil
}

// AlgorithmKind resolves the configured algorithm name.
func (c *Config) AlgorithmKind() (trace.Algorithm, error) {
	return trace.ParseAlgorithm(c.Algorithm)
}

// Generator builds the random input source for this config. A zero seed
// leaves the sequence to the caller's clock-based seed.
func (c *Config) Generator(fallbackSeed int64) *input.Generator {
	seed := c.Seed
	if seed == 0 {
		seed = fallbackSeed
	}
	g := input.NewGenerator(seed)
	g.Count = c.Random.Count
	g.Min = c.Random.Min
	g.Max = c.Random.Max
	return g
}

// ClampSpeed bounds ms to the range the player slider offers.
func ClampSpeed(ms int) int {
	if ms < MinSpeedMs {
		return MinSpeedMs
	}
	if ms > MaxSpeedMs {
		return MaxSpeedMs
	}
	return ms
}
