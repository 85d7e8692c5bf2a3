package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the JSON configuration file at path and unmarshals it into
// a fresh [StructuredConfig]. Field names follow the Go struct field names
// (mergo merges the result on top of env/flag values, so the file only needs
// the fields it wants to set).
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return cfg, nil
}
