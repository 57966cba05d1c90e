// Package profile persists classifier tunings as YAML so a tuning session
// against one rig can be reused across runs.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/ledmorse/internal/classify"
	"github.com/ivlev/ledmorse/internal/config"
)

// Profile is the on-disk tuning document: gamma plus the HSV thresholds,
// and optionally a grid layout for non-reference matrices.
type Profile struct {
	Version    string              `yaml:"version"`
	Gamma      float64             `yaml:"gamma"`
	Grid       *config.GridLayout  `yaml:"grid,omitempty"`
	Thresholds classify.Thresholds `yaml:"thresholds"`
}

// FromConfig snapshots the tunable part of a configuration.
func FromConfig(cfg *config.Config) *Profile {
	grid := cfg.Grid
	return &Profile{
		Version:    "1.0",
		Gamma:      cfg.Gamma,
		Grid:       &grid,
		Thresholds: cfg.Thresholds,
	}
}

// Apply overlays the profile onto a configuration. Absent grid means the
// configuration keeps its current layout.
func (p *Profile) Apply(cfg *config.Config) {
	cfg.Gamma = p.Gamma
	cfg.Thresholds = p.Thresholds
	if p.Grid != nil {
		cfg.Grid = *p.Grid
	}
}

// Write stores the profile as YAML.
func Write(p *Profile, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read loads a profile from a YAML file.
func Read(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
