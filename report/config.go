package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExplorationConfig is the YAML-serializable configuration for a
// sembas-explore run: jump distance, overlap margin, adherer rotation
// limits, PRNG seed, and the domain bounds to search within.
type ExplorationConfig struct {
	JumpDistance  float64   `yaml:"jump_distance"`
	Margin        float64   `yaml:"margin"`
	DeltaAngleDeg float64   `yaml:"delta_angle_deg"`
	MaxRotateDeg  float64   `yaml:"max_rotate_deg"`
	Seed          uint64    `yaml:"seed"`
	DomainLow     []float64 `yaml:"domain_low"`
	DomainHigh    []float64 `yaml:"domain_high"`
	MaxBoundary   int       `yaml:"max_boundary_points"`
	MaxSamples    int       `yaml:"max_samples"`
}

// DefaultExplorationConfig returns reasonable defaults for exploring a
// sphere or cube inscribed in the unit cube.
func DefaultExplorationConfig() ExplorationConfig {
	return ExplorationConfig{
		JumpDistance:  0.05,
		Margin:        0.045,
		DeltaAngleDeg: 15,
		MaxRotateDeg:  180,
		Seed:          1,
		DomainLow:     []float64{0, 0, 0},
		DomainHigh:    []float64{1, 1, 1},
		MaxBoundary:   500,
		MaxSamples:    1000,
	}
}

// LoadConfig reads an ExplorationConfig from a YAML file at path, layering
// its values over DefaultExplorationConfig for any field the file omits.
func LoadConfig(path string) (ExplorationConfig, error) {
	cfg := DefaultExplorationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("report: reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("report: parsing config %s: %w", path, err)
	}

	return cfg, nil
}
