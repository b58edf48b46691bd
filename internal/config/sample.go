package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daryltucker/cmdbench/internal/model"
	"gopkg.in/yaml.v3"
)

// Sample returns the built-in example configuration.
func Sample() *model.Config {
	return &model.Config{
		TaskGroups: []model.TaskGroup{
			{
				Name:                  "Greeting",
				InitializationCommand: []string{"clear"},
				CleanupCommand:        []string{},
				Tasks: []model.Task{
					{
						SetupCommand:    []string{},
						Command:         []string{"echo", "Hello World!"},
						RepetitionCount: 1,
						TearDownCommand: []string{},
					},
				},
			},
		},
	}
}

// Marshal serialises cfg in the given format.
func Marshal(cfg *model.Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatHCL:
		return encodeHCL(cfg), nil
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// WriteSample writes the sample configuration to path.
// The format follows the file extension (JSON unless .yaml/.yml/.hcl).
func WriteSample(path string) error {
	data, err := Marshal(Sample(), formatOf(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sample config %s: %w", path, err)
	}
	return nil
}
