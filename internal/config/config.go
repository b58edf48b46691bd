/*
PURPOSE:
  Defines the configuration loading logic for cmdbench.
  Reads a benchmark definition (task groups and tasks) from disk.

REQUIREMENTS:
  User-specified:
  - Load task groups from a configuration file.
  - Support the JSON layout produced by `cmdbench sample`.

  Implementation-discovered:
  - YAML and HCL are friendlier to hand-write; the format is picked from
    the file extension.
  - Needs to search default file names when no path is given.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Produces: internal/model.Config
  - Dependencies: gopkg.in/yaml.v3, github.com/hashicorp/hcl/v2

ERROR HANDLING:
  - Returns explicit error if the file is missing, unparsable or invalid.
  - Validation reports every problem found, not only the first.

IMPLEMENTATION RULES:
  - Never run anything here. Loading is pure I/O plus validation.
  - Keep the engine free of format concerns.

USAGE:
  cfg, err := config.Load("cmdbench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If a new format is added, extend formatOf() and decode().

RELATED FILES:
  - internal/config/hcl.go
  - internal/config/sample.go
  - internal/model/types.go

MAINTENANCE:
  - Update when the schema in internal/model changes.
*/

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/cmdbench/internal/model"
	"gopkg.in/yaml.v3"
)

// Format identifies an on-disk configuration format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// DefaultFiles are searched, in order, when Load is called without a path.
var DefaultFiles = []string{"cmdbench.json", "cmdbench.yaml", "cmdbench.yml", "cmdbench.hcl"}

// ErrNoConfig is returned when no path is given and no default file exists.
var ErrNoConfig = errors.New("no configuration file found")

// Load reads and validates configuration from a file.
// If path is empty, DefaultFiles are searched in order.
func Load(path string) (*model.Config, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w (searched %s)", ErrNoConfig, strings.Join(DefaultFiles, ", "))
		}
	}

	cfg, err := decode(data, path, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// formatOf maps a file extension to a Format. Unknown extensions are JSON.
func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return FormatJSON
	}
}

func decode(data []byte, filename string, format Format) (*model.Config, error) {
	cfg := &model.Config{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to an empty config, as with yaml.Unmarshal.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatHCL:
		return decodeHCL(data, filename)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the edge cases the engine cannot recover from:
// empty measured commands and negative repetition counts.
// Empty helper commands are valid and mean "no helper".
func Validate(cfg *model.Config) error {
	var errs []error

	for gi, group := range cfg.TaskGroups {
		for ti, task := range group.Tasks {
			where := fmt.Sprintf("task_groups[%d] (%q) tasks[%d]", gi, group.Name, ti)
			if task.Executable() == "" {
				errs = append(errs, fmt.Errorf("%s: command must name an executable", where))
			}
			if task.RepetitionCount < 0 {
				errs = append(errs, fmt.Errorf("%s: repetition_count must not be negative, got %d", where, task.RepetitionCount))
			}
		}
	}

	return errors.Join(errs...)
}

// PlannedRuns returns how many measured invocations cfg describes.
func PlannedRuns(cfg *model.Config) int {
	total := 0
	for _, group := range cfg.TaskGroups {
		for _, task := range group.Tasks {
			total += task.RepetitionCount
		}
	}
	return total
}
