// Package config holds the simulator geometry parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NumArchRegs is the size of the architectural register file.
const NumArchRegs = 64

// Config holds the microarchitectural parameters, fixed at setup.
type Config struct {
	// ResultBuses is the number of CDB result-bus slots (r).
	ResultBuses uint64 `json:"result_buses" yaml:"resultBuses"`

	// K0, K1, K2 are the functional-unit counts per op class.
	K0 uint64 `json:"k0" yaml:"k0"`
	K1 uint64 `json:"k1" yaml:"k1"`
	K2 uint64 `json:"k2" yaml:"k2"`

	// FetchWidth is the number of instructions fetched per cycle (f).
	FetchWidth uint64 `json:"fetch_width" yaml:"fetchWidth"`

	// BeginDump and EndDump bound the inclusive instruction-id range for
	// per-instruction trace emission. BeginDump zero disables the dump.
	BeginDump uint64 `json:"begin_dump" yaml:"beginDump"`
	EndDump   uint64 `json:"end_dump" yaml:"endDump"`
}

// DefaultConfig returns a Config with a small default machine.
func DefaultConfig() *Config {
	return &Config{
		ResultBuses: 2,
		K0:          1,
		K1:          1,
		K2:          1,
		FetchWidth:  4,
		BeginDump:   1,
		EndDump:     100,
	}
}

// SchedQueueCapacity returns the derived scheduling-queue capacity.
func (c *Config) SchedQueueCapacity() uint64 {
	return 2 * (c.K0 + c.K1 + c.K2)
}

// Validate checks that the configuration describes a runnable machine.
func (c *Config) Validate() error {
	if c.ResultBuses == 0 {
		return fmt.Errorf("result_buses must be > 0")
	}
	if c.FetchWidth == 0 {
		return fmt.Errorf("fetch_width must be > 0")
	}
	if c.K0+c.K1+c.K2 == 0 {
		return fmt.Errorf("at least one functional unit is required")
	}
	if c.BeginDump > 0 && c.EndDump < c.BeginDump {
		return fmt.Errorf("end_dump %d precedes begin_dump %d", c.EndDump, c.BeginDump)
	}
	return nil
}

// Load reads a Config from a JSON or YAML file, selected by extension.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the Config to a JSON file.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
