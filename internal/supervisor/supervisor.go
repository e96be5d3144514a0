package supervisor

import (
	"errors"
	"log/slog"

	"github.com/randomizedcoder/go-timelimit/internal/cmdline"
	"github.com/randomizedcoder/go-timelimit/internal/platform"
)

// Supervisor runs one child process under a wall-clock time budget.
// A Supervisor serves a single Run call; there is no concurrent or
// re-entrant use, so no internal locking is needed.
type Supervisor struct {
	platform platform.Platform
	logger   *slog.Logger
	state    State
}

// Config holds configuration for creating a new Supervisor.
type Config struct {
	// Platform provides the process primitives. Defaults to the host.
	Platform platform.Platform

	// Logger receives lifecycle events. Defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a new Supervisor with the given configuration.
func New(cfg Config) *Supervisor {
	p := cfg.Platform
	if p == nil {
		p = platform.Host()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Supervisor{
		platform: p,
		logger:   logger,
		state:    StateCreated,
	}
}

// State returns the current state of the run.
func (s *Supervisor) State() State {
	return s.state
}

// Run spawns the child described by cl and waits up to timeoutMS
// milliseconds for it to exit. The returned status is the launcher's
// final exit code: the child's own code when it completes in time,
// ExitTimedOut when the budget expires, or the reserved failure code
// matching the returned *Error otherwise.
//
// The OS handles acquired at spawn are released before Run returns,
// on every path.
func (s *Supervisor) Run(timeoutMS uint32, cl cmdline.CommandLine) (int, error) {
	handle, err := s.platform.Spawn(cl)
	if err != nil {
		// No process or thread handle exists yet; nothing to release.
		if errors.Is(err, platform.ErrNotFound) {
			return s.fail(KindCommandNotFound, err)
		}
		return s.fail(KindCannotInvoke, err)
	}
	defer handle.Release()

	s.logger.Debug("child_started",
		"pid", handle.Pid(),
		"program", cl.Program(),
		"timeout_ms", timeoutMS,
	)

	s.state = StateWaiting
	outcome, err := handle.Wait(timeoutMS)
	if err != nil {
		return s.fail(KindWaitFailed, err)
	}

	switch outcome {
	case platform.WaitTimedOut:
		if err := handle.Terminate(); err != nil {
			return s.fail(KindTerminateFailed, err)
		}
		if err := handle.TerminateCheck(); err != nil {
			return s.fail(KindPostTerminateCheckFailed, err)
		}
		s.state = StateTimedOut
		s.logger.Debug("child_timed_out",
			"pid", handle.Pid(),
			"timeout_ms", timeoutMS,
		)
		return ExitTimedOut, nil

	case platform.WaitCompleted:
		code, err := handle.ExitCode()
		if err != nil {
			return s.fail(KindExitCodeUnavailable, err)
		}
		s.state = StateCompleted
		s.logger.Debug("child_exited",
			"pid", handle.Pid(),
			"exit_code", code,
		)
		return code, nil

	default:
		return s.fail(KindUnexpectedWaitResult, nil)
	}
}

// fail records the terminal failure state and returns the mapped
// exit status together with the classified error.
func (s *Supervisor) fail(kind Kind, err error) (int, error) {
	s.state = StateFailed
	s.logger.Debug("run_failed", "kind", kind.String(), "error", err)
	return kind.ExitCode(), &Error{Kind: kind, Err: err}
}
