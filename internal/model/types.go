/*
PURPOSE:
  Defines the core data structures used throughout cmdbench.
  The configuration tree (groups, tasks) and the execution records
  produced by the engine.

REQUIREMENTS:
  User-specified:
  - Groups carry initialization/cleanup commands and an ordered task list.
  - Tasks carry setup/tear-down commands, the measured command and a
    repetition count.
  - Records hold one nanosecond measurement per repetition.

  Implementation-discovered:
  - Need JSON, YAML and HCL tags (three config formats).
  - Keep group and command separate in records; the joined label is only
    needed at export time.

ARCHITECTURE INTEGRATION:
  - Used by: internal/config, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - The engine never mutates these values.

USAGE:
  cfg := model.Config{TaskGroups: []model.TaskGroup{...}}

SELF-HEALING INSTRUCTIONS:
  - If a new field is added, update config/hcl.go and the sample config.

RELATED FILES:
  - internal/config/config.go
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when the configuration schema changes.
*/

package model

import (
	"time"
)

// Config is the root of a benchmark definition.
type Config struct {
	TaskGroups []TaskGroup `json:"task_groups" yaml:"task_groups"`
}

// TaskGroup is a named collection of tasks sharing one
// initialization/cleanup pair.
type TaskGroup struct {
	Name                  string   `json:"name" yaml:"name"`
	InitializationCommand []string `json:"initialization_command" yaml:"initialization_command"`
	CleanupCommand        []string `json:"cleanup_command" yaml:"cleanup_command"`
	Tasks                 []Task   `json:"tasks" yaml:"tasks"`
}

// Task is one measured command plus its setup/tear-down hooks.
type Task struct {
	SetupCommand    []string `json:"setup_command" yaml:"setup_command"`
	Command         []string `json:"command" yaml:"command"`
	RepetitionCount int      `json:"repetition_count" yaml:"repetition_count"`
	TearDownCommand []string `json:"tear_down_command" yaml:"tear_down_command"`
}

// Executable returns the first element of the measured command, or "".
func (t Task) Executable() string {
	if len(t.Command) == 0 {
		return ""
	}
	return t.Command[0]
}

// ExecutionRecord is one timed repetition of a measured command.
type ExecutionRecord struct {
	Group         string        `json:"group"`
	Command       string        `json:"command"`
	ExecutionTime time.Duration `json:"execution_time_ns"`
}

// Label joins group and executable name as "<group>/<command>".
// An empty group yields the bare command name.
func (r ExecutionRecord) Label() string {
	if r.Group == "" {
		return r.Command
	}
	return r.Group + "/" + r.Command
}

// IsHelperAbsent reports whether a helper command should be skipped:
// an empty argv or an empty executable name.
func IsHelperAbsent(argv []string) bool {
	return len(argv) == 0 || argv[0] == ""
}
