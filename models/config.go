package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IngestConfig holds runtime configuration for ingest runs. Values come
// from CLI flags, optionally seeded from a YAML config file.
type IngestConfig struct {
	URLs             []string `yaml:"urls"`
	WorkerCount      int      `yaml:"workers"`
	Database         string   `yaml:"database"`
	SummarySentences int      `yaml:"summary_sentences"`
}

// LoadConfig reads an IngestConfig from a YAML file.
func LoadConfig(path string) (*IngestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config IngestConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}
