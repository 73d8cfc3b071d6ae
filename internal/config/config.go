// Package config holds the YAML-backed run configuration for the three
// scenario drivers. Defaults reproduce the published figures; a config
// file overrides defaults and CLI flags override the file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir  = "figures/data"
	DefaultAbsTol     = 1e-10
	DefaultRelTol     = 1e-10
	DefaultPoleMargin = 0.05
	DefaultBox        = 3.0
	DefaultExclusion  = 0.05
	DefaultMu         = 0.01
	DefaultGridRes    = 64
)

type Config struct {
	OutputDir  string           `yaml:"output_dir"`
	Integrator IntegratorConfig `yaml:"integrator"`
	Ellipsoid  EllipsoidConfig  `yaml:"ellipsoid"`
	Lagrange   LagrangeConfig   `yaml:"lagrange"`
	Bump       BumpConfig       `yaml:"bump"`
}

type IntegratorConfig struct {
	AbsTol      float64 `yaml:"abs_tol"`
	RelTol      float64 `yaml:"rel_tol"`
	InitialStep float64 `yaml:"initial_step"`
	MinStep     float64 `yaml:"min_step"`
	MaxStep     float64 `yaml:"max_step"`
	MaxSteps    int     `yaml:"max_steps"`
}

type EllipsoidConfig struct {
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	C          float64 `yaml:"c"`
	PoleMargin float64 `yaml:"pole_margin"`
	SMax       float64 `yaml:"s_max"`
	GridRes    int     `yaml:"grid_res"`
	GlyphCount int     `yaml:"glyph_count"`
}

type LagrangeConfig struct {
	Mu              float64 `yaml:"mu"`
	Box             float64 `yaml:"box"`
	ExclusionRadius float64 `yaml:"exclusion_radius"`
	L1Seed          float64 `yaml:"l1_seed"`
	SMax            float64 `yaml:"s_max"`
	GridRes         int     `yaml:"grid_res"`
}

type BumpConfig struct {
	Amplitude  float64 `yaml:"amplitude"`
	Width      float64 `yaml:"width"`
	Box        float64 `yaml:"box"`
	LaunchX    float64 `yaml:"launch_x"`
	FanHalf    float64 `yaml:"fan_half_width"`
	FanCount   int     `yaml:"fan_count"`
	SMax       float64 `yaml:"s_max"`
	GridRes    int     `yaml:"grid_res"`
	GlyphCount int     `yaml:"glyph_count"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Integrator: IntegratorConfig{
			AbsTol:      DefaultAbsTol,
			RelTol:      DefaultRelTol,
			InitialStep: 1e-3,
			MinStep:     1e-13,
			MaxStep:     0.1,
			MaxSteps:    500000,
		},
		Ellipsoid: EllipsoidConfig{
			A:          1.5,
			B:          1.0,
			C:          0.7,
			PoleMargin: DefaultPoleMargin,
			SMax:       8.0,
			GridRes:    DefaultGridRes,
			GlyphCount: 24,
		},
		Lagrange: LagrangeConfig{
			Mu:              DefaultMu,
			Box:             1.5,
			ExclusionRadius: DefaultExclusion,
			L1Seed:          0.5,
			SMax:            6.0,
			GridRes:         121,
		},
		Bump: BumpConfig{
			Amplitude:  1.0,
			Width:      1.0,
			Box:        DefaultBox,
			LaunchX:    -2.5,
			FanHalf:    1.2,
			FanCount:   9,
			SMax:       8.0,
			GridRes:    DefaultGridRes,
			GlyphCount: 16,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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
