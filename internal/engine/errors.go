package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClockUnavailable is reported when a repetition could not be measured.
// It is never returned from Run; the repetition is skipped instead.
var ErrClockUnavailable = errors.New("no measurement available")

// Phase names where in a task group a command was invoked.
type Phase string

const (
	PhaseInitialization Phase = "initialization"
	PhaseSetup          Phase = "setup"
	PhaseMeasured       Phase = "measured"
	PhaseTearDown       Phase = "tear_down"
	PhaseCleanup        Phase = "cleanup"
)

// SpawnError means a child process could not be started.
type SpawnError struct {
	Argv []string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// DecodeError means captured child output was not valid UTF-8 text.
type DecodeError struct {
	Argv []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("output of command %q is not valid UTF-8", strings.Join(e.Argv, " "))
}

// MalformedCommandError means a task has no measured executable.
type MalformedCommandError struct {
	GroupIndex int
	GroupName  string
	TaskIndex  int
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("task group %d (%q) task %d: measured command is empty", e.GroupIndex, e.GroupName, e.TaskIndex)
}

// RunError wraps a fatal failure with its position in the configuration.
type RunError struct {
	Group string
	Phase Phase
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("group %q, %s command: %v", e.Group, e.Phase, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
