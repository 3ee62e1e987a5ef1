package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/netgrowth/internal/dataset"
	"github.com/san-kum/netgrowth/internal/growth"
	"github.com/san-kum/netgrowth/internal/logging"
)

const (
	DefaultDataPath = "dataset/number-of-internet-users.csv"
	DefaultR        = 0.1
	DefaultH        = 0.1
	DefaultKFactor  = 1.2
	DefaultTheme    = "classic"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	DataPath string         `yaml:"data"`
	Entity   string         `yaml:"entity"`
	Model    ModelConfig    `yaml:"model"`
	Sliders  Sliders        `yaml:"sliders"`
	MaxSteps int            `yaml:"max_steps"`
	Log      logging.Config `yaml:"log"`
	Chart    ChartConfig    `yaml:"chart"`
	// Theme names the terminal color theme.
	Theme string `yaml:"theme"`
}

type ModelConfig struct {
	R float64 `yaml:"r"`
	H float64 `yaml:"h"`
	// K is the absolute carrying capacity; zero means KFactor times the
	// largest observation.
	K       float64 `yaml:"k"`
	KFactor float64 `yaml:"k_factor"`
	// Horizon overrides the series length when positive.
	Horizon float64 `yaml:"horizon"`
}

// Range is a slider: inclusive bounds and a step.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Sliders bound the interactive inputs. K bounds are factors of the
// largest observation.
type Sliders struct {
	R       Range `yaml:"r"`
	KFactor Range `yaml:"k_factor"`
	H       Range `yaml:"h"`
}

type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		DataPath: DefaultDataPath,
		Entity:   dataset.DefaultEntity,
		Model: ModelConfig{
			R:       DefaultR,
			H:       DefaultH,
			KFactor: DefaultKFactor,
		},
		Sliders: Sliders{
			R:       Range{Min: 0.01, Max: 1.0, Step: 0.01},
			KFactor: Range{Min: 1.0, Max: 3.0, Step: 0.1},
			H:       Range{Min: 0.01, Max: 1.0, Step: 0.01},
		},
		Log: logging.DefaultConfig(),
		Chart: ChartConfig{
			Width:  1400,
			Height: 600,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as yaml, replacing any existing file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Model.K == 0 && c.Model.KFactor == 0 {
		return fmt.Errorf("%w: one of model.k or model.k_factor must be set", ErrInvalidConfig)
	}
	for name, r := range map[string]Range{"r": c.Sliders.R, "k_factor": c.Sliders.KFactor, "h": c.Sliders.H} {
		if r.Min > r.Max || r.Step <= 0 {
			return fmt.Errorf("%w: slider %s has range [%v, %v] step %v", ErrInvalidConfig, name, r.Min, r.Max, r.Step)
		}
	}
	return nil
}

// Capacity returns the carrying capacity for a series with the given
// largest observation.
func (c *Config) Capacity(maxObserved float64) float64 {
	if c.Model.K != 0 {
		return c.Model.K
	}
	return c.Model.KFactor * maxObserved
}

// Resolve builds simulation parameters for series: the first observation
// is the initial value and the series length is the horizon.
func (c *Config) Resolve(series *dataset.Series) growth.Params {
	horizon := float64(series.Len())
	if c.Model.Horizon > 0 {
		horizon = c.Model.Horizon
	}
	return growth.Params{
		U0:      series.Initial(),
		R:       c.Model.R,
		K:       c.Capacity(series.Max()),
		H:       c.Model.H,
		Horizon: horizon,
	}
}
