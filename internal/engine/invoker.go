/*
PURPOSE:
  Runs a single argv as a child process.
  The measured span is taken around Invoke() by the runner, not here.

REQUIREMENTS:
  User-specified:
  - No shell interpretation; argv is passed verbatim.
  - Quiet mode hides child output; verbose mode streams it live and
    reports the exit status.

  Implementation-discovered:
  - Echo mode (capture stdout, print after exit) is kept for people used to
    the old display_output switch. Captured output must be valid UTF-8.
  - A non-zero exit status is NOT a failure. Only spawn problems are.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: os/exec, internal/output (logger)

ERROR HANDLING:
  - *SpawnError when the process cannot be started (missing binary,
    permission denied, ...).
  - *DecodeError from Report() when echo-mode output is not UTF-8.

IMPLEMENTATION RULES:
  - Blocking. Returns only after the child exits.
  - Invoke() only spawns and waits. Printing and exit-status logging live
    in Report(), which the runner calls after the clock is sampled.
  - No retries, no timeouts.

USAGE:
  inv := engine.NewProcessInvoker(engine.ModeQuiet)
  res, err := inv.Invoke([]string{"echo", "hi"})
  err = inv.Report([]string{"echo", "hi"}, res)

SELF-HEALING INSTRUCTIONS:
  - If exit codes show as -1, the process was killed by a signal.

RELATED FILES:
  - internal/engine/runner.go
  - internal/engine/errors.go

MAINTENANCE:
  - Update if process groups or environment control are ever needed.
*/

package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/daryltucker/cmdbench/internal/output"
)

// Result describes a finished child process.
type Result struct {
	ExitCode int
	// Output holds captured stdout in echo mode; nil otherwise.
	Output []byte
}

// Invoker executes one command and blocks until it exits.
// Report surfaces the outcome and is never part of a measured span.
type Invoker interface {
	Invoke(argv []string) (Result, error)
	Report(argv []string, res Result) error
}

// Mode selects how child output is surfaced.
type Mode int

const (
	// ModeQuiet discards child stdout and stderr.
	ModeQuiet Mode = iota
	// ModeEcho captures stdout and prints it once the child exits.
	ModeEcho
	// ModeVerbose lets the child inherit stdout and stderr, then reports the exit status.
	ModeVerbose
)

func (m Mode) String() string {
	switch m {
	case ModeQuiet:
		return "quiet"
	case ModeEcho:
		return "echo"
	case ModeVerbose:
		return "verbose"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ProcessInvoker runs commands with os/exec.
type ProcessInvoker struct {
	Mode   Mode
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewProcessInvoker returns an invoker wired to the process's own streams.
func NewProcessInvoker(mode Mode) *ProcessInvoker {
	return &ProcessInvoker{
		Mode:   mode,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: output.Logger,
	}
}

// Invoke runs argv[0] with argv[1:] as arguments and waits for it.
func (p *ProcessInvoker) Invoke(argv []string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{}, &SpawnError{Argv: argv, Err: exec.ErrNotFound}
	}

	cmd := exec.Command(argv[0], argv[1:]...)

	var captured bytes.Buffer
	switch p.Mode {
	case ModeVerbose:
		cmd.Stdout = p.Stdout
		cmd.Stderr = p.Stderr
	case ModeEcho:
		cmd.Stdout = &captured
		cmd.Stderr = io.Discard
	default:
		// nil streams are connected to the null device
	}

	exitCode, err := classify(cmd.Run())
	if err != nil {
		return Result{}, &SpawnError{Argv: argv, Err: err}
	}

	res := Result{ExitCode: exitCode}
	if p.Mode == ModeEcho {
		res.Output = captured.Bytes()
	}
	return res, nil
}

// Report prints echo-mode output and logs the exit status.
func (p *ProcessInvoker) Report(argv []string, res Result) error {
	if p.Mode == ModeEcho {
		if !utf8.Valid(res.Output) {
			return &DecodeError{Argv: argv}
		}
		fmt.Fprintln(p.Stdout, string(res.Output))
	}

	logger := p.logger()
	if p.Mode == ModeVerbose {
		logger.Info("Command finished", "command", argv[0], "exit_code", res.ExitCode)
	} else if res.ExitCode != 0 {
		logger.Debug("Command exited with non-zero status", "command", argv[0], "exit_code", res.ExitCode)
	}

	return nil
}

func (p *ProcessInvoker) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return output.Logger
}

// classify separates "the child ran and exited" from "the child never ran".
func classify(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
