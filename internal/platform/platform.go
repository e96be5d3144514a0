// Package platform abstracts the host OS process primitives behind a
// small capability interface so the supervisor state machine is
// independent of the concrete process API. Two backends exist: a
// Windows backend built on CreateProcess/WaitForSingleObject, and a
// portable backend built on os/exec for everything else.
package platform

import (
	"errors"

	"github.com/randomizedcoder/go-timelimit/internal/cmdline"
)

// ErrNotFound is wrapped into Spawn errors that indicate the child
// executable could not be located. Callers classify with errors.Is.
var ErrNotFound = errors.New("executable not found")

// InfiniteWait is the budget value that disables the wait deadline.
// It matches the Windows INFINITE constant, so on that backend the
// value passes straight through to the wait primitive.
const InfiniteWait = ^uint32(0)

// WaitOutcome is the result of a bounded wait on a child process.
type WaitOutcome int

const (
	// WaitCompleted indicates the child exited within the budget.
	WaitCompleted WaitOutcome = iota

	// WaitTimedOut indicates the budget elapsed first.
	WaitTimedOut

	// WaitUnknown covers unexpected return values from the
	// underlying wait primitive.
	WaitUnknown
)

// String returns a human-readable name for the outcome.
func (o WaitOutcome) String() string {
	switch o {
	case WaitCompleted:
		return "completed"
	case WaitTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Platform creates child processes.
type Platform interface {
	// Spawn starts the child described by the command line with the
	// parent's environment, working directory, and standard streams.
	// Spawn errors for a missing executable wrap ErrNotFound.
	Spawn(cl cmdline.CommandLine) (Handle, error)
}

// Handle is an exclusive reference to a spawned child process and the
// kernel resources backing it. Exactly one Release call must occur
// per handle; after Release the handle must not be used.
type Handle interface {
	// Pid returns the OS process ID of the child.
	Pid() int

	// Wait blocks until the child exits or timeoutMS milliseconds
	// elapse, whichever comes first. A non-nil error means the wait
	// primitive itself failed, not that the child misbehaved.
	Wait(timeoutMS uint32) (WaitOutcome, error)

	// Terminate forcibly ends the child. The child's own intended
	// exit code is discarded; it never gets to report one.
	Terminate() error

	// TerminateCheck performs a zero-duration probe after Terminate.
	// It reports only whether the probe call itself failed, not
	// whether the child is conclusively gone.
	TerminateCheck() error

	// ExitCode returns the child's exit status. Valid only after
	// Wait reported WaitCompleted.
	ExitCode() (int, error)

	// Release closes the OS resources backing the handle. It is
	// safe to call on every exit path; a second call is a no-op.
	Release() error
}

// Host returns the platform backend for the current GOOS.
func Host() Platform {
	return hostPlatform{}
}
