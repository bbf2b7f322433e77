// Package config loads Manager sizing hints from YAML, so a host
// application can pre-size the ECS storage core for its expected entity
// count without touching Go source.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManagerConfig holds the sizing hints ecs.NewManagerWithConfig consumes.
// Zero values are valid: a zero InitialEntityCapacity means "grow from
// empty", matching NewManager's behavior.
type ManagerConfig struct {
	InitialEntityCapacity int `yaml:"initial_entity_capacity"`
	InitialPoolCapacity   int `yaml:"initial_pool_capacity"`
	MaxComponentTypes     int `yaml:"max_component_types"`
}

// DefaultManagerConfig returns the configuration NewManager uses: no
// pre-sizing, unbounded component types.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		InitialEntityCapacity: 0,
		InitialPoolCapacity:   0,
		MaxComponentTypes:     0,
	}
}

// LoadManagerConfig reads a ManagerConfig from a YAML file at path.
// Fields absent from the file keep DefaultManagerConfig's zero values.
func LoadManagerConfig(path string) (ManagerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ManagerConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultManagerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ManagerConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
