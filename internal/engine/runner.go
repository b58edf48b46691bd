/*
PURPOSE:
  High-level runner that orchestrates the benchmarking process.
  Loops through Task Groups -> Tasks -> Repetitions and times each
  measured command.

REQUIREMENTS:
  User-specified:
  - Strict order: group init, then per task setup, N timed runs,
    tear-down, then group cleanup.
  - Helper commands with an empty argv (or empty executable) are skipped.
  - One record per measured repetition, labelled "<group>/<executable>".

  Implementation-discovered:
  - Validate every measured command before anything runs, so a broken
    config never leaves half a benchmark behind.
  - A repetition whose duration cannot be measured is dropped, not faked.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/model, internal/output (logger)

ERROR HANDLING:
  - First fatal error aborts the run and is returned as *RunError or
    *MalformedCommandError.
  - Records gathered before the failure stay readable via Records();
    the caller decides whether to export them.

IMPLEMENTATION RULES:
  - Sequential. Never run two commands at once.
  - Never mutate the configuration.

USAGE:
  e := engine.New(engine.ModeQuiet)
  err := e.Run(cfg)
  records := e.Records()

SELF-HEALING INSTRUCTIONS:
  - If timings look inflated, check that nothing but Invoke() sits between
    the two clock samples in measure(). Report() runs after them.

RELATED FILES:
  - internal/engine/invoker.go
  - internal/engine/timer.go
  - internal/engine/recorder.go

MAINTENANCE:
  - Update iteration logic if parallelism is introduced.
*/

package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/daryltucker/cmdbench/internal/model"
	"github.com/daryltucker/cmdbench/internal/output"
)

// Engine walks a configuration and records measured execution times.
// Use one Engine per run.
type Engine struct {
	invoker  Invoker
	clock    Clock
	logger   *slog.Logger
	recorder Recorder
}

// Option customises an Engine.
type Option func(*Engine)

// WithInvoker replaces the process invoker.
func WithInvoker(inv Invoker) Option {
	return func(e *Engine) { e.invoker = inv }
}

// WithClock replaces the clock used for measurements.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger replaces the progress logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine that runs processes in the given display mode.
func New(mode Mode, opts ...Option) *Engine {
	e := &Engine{
		clock:  time.Now,
		logger: output.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.invoker == nil {
		inv := NewProcessInvoker(mode)
		inv.Logger = e.logger
		e.invoker = inv
	}
	return e
}

// Records returns the records collected so far, in execution order.
func (e *Engine) Records() []model.ExecutionRecord {
	return e.recorder.Records()
}

// Run executes every task group in declaration order.
func (e *Engine) Run(cfg *model.Config) error {
	if err := checkMeasuredCommands(cfg); err != nil {
		return err
	}

	start := time.Now()
	for _, group := range cfg.TaskGroups {
		if err := e.runGroup(group); err != nil {
			e.logger.Error("Run aborted", "group", group.Name, "records", e.recorder.Len(), "error", err)
			return err
		}
	}

	e.logger.Info("Run complete", "groups", len(cfg.TaskGroups), "records", e.recorder.Len(), "elapsed", time.Since(start))
	return nil
}

func (e *Engine) runGroup(group model.TaskGroup) error {
	e.logger.Info("Running task group", "group", group.Name, "tasks", len(group.Tasks))

	if err := e.runHelper(group.Name, PhaseInitialization, group.InitializationCommand); err != nil {
		return err
	}

	for _, task := range group.Tasks {
		if err := e.runHelper(group.Name, PhaseSetup, task.SetupCommand); err != nil {
			return err
		}
		if err := e.runMeasured(group.Name, task); err != nil {
			return err
		}
		if err := e.runHelper(group.Name, PhaseTearDown, task.TearDownCommand); err != nil {
			return err
		}
	}

	return e.runHelper(group.Name, PhaseCleanup, group.CleanupCommand)
}

func (e *Engine) runHelper(group string, phase Phase, argv []string) error {
	if model.IsHelperAbsent(argv) {
		e.logger.Debug("Skipping empty helper command", "group", group, "phase", phase)
		return nil
	}

	e.logger.Debug("Running helper command", "group", group, "phase", phase, "command", argv[0])
	res, err := e.invoker.Invoke(argv)
	if err == nil {
		err = e.invoker.Report(argv, res)
	}
	if err != nil {
		return &RunError{Group: group, Phase: phase, Err: err}
	}
	return nil
}

func (e *Engine) runMeasured(group string, task model.Task) error {
	executable := task.Executable()
	e.logger.Info("Measuring command", "group", group, "command", executable, "repetitions", task.RepetitionCount)

	for i := 0; i < task.RepetitionCount; i++ {
		var res Result
		elapsed, err := measure(e.clock, func() error {
			var invokeErr error
			res, invokeErr = e.invoker.Invoke(task.Command)
			return invokeErr
		})
		unmeasured := errors.Is(err, ErrClockUnavailable)
		if err != nil && !unmeasured {
			return &RunError{Group: group, Phase: PhaseMeasured, Err: err}
		}

		// Output and exit status are surfaced after the second clock sample.
		if err := e.invoker.Report(task.Command, res); err != nil {
			return &RunError{Group: group, Phase: PhaseMeasured, Err: err}
		}

		if unmeasured {
			e.logger.Warn("Skipping repetition without measurement", "group", group, "command", executable, "repetition", i+1)
			continue
		}

		e.recorder.add(group, executable, elapsed)
		e.logger.Debug("Recorded repetition", "group", group, "command", executable, "repetition", i+1, "elapsed", elapsed)
	}

	return nil
}

// checkMeasuredCommands rejects tasks without an executable before
// anything is started.
func checkMeasuredCommands(cfg *model.Config) error {
	for gi, group := range cfg.TaskGroups {
		for ti, task := range group.Tasks {
			if task.Executable() == "" {
				return &MalformedCommandError{GroupIndex: gi, GroupName: group.Name, TaskIndex: ti}
			}
		}
	}
	return nil
}
