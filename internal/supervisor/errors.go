package supervisor

import "fmt"

// Reserved launcher exit codes, following the coreutils timeout
// convention. Any other status is the child's own exit code passed
// through unchanged.
const (
	// ExitTimedOut means the child was terminated on budget expiry.
	ExitTimedOut = 124

	// ExitInternal means a launcher-level error (bad arguments, or a
	// wait/terminate/exit-code-retrieval failure).
	ExitInternal = 125

	// ExitCannotInvoke means the child was found but could not be started.
	ExitCannotInvoke = 126

	// ExitNotFound means the child program could not be located.
	ExitNotFound = 127
)

// Kind classifies a launcher-level failure. Every kind is terminal:
// one launch attempt, one wait, one terminate.
type Kind int

const (
	// KindCommandNotFound: the child executable could not be located.
	KindCommandNotFound Kind = iota

	// KindCannotInvoke: process creation failed for another reason.
	KindCannotInvoke

	// KindWaitFailed: the bounded-wait primitive itself failed.
	KindWaitFailed

	// KindUnexpectedWaitResult: the wait primitive returned an
	// unrecognized outcome.
	KindUnexpectedWaitResult

	// KindTerminateFailed: forced termination on timeout failed.
	KindTerminateFailed

	// KindPostTerminateCheckFailed: the zero-duration probe after
	// termination reported an error.
	KindPostTerminateCheckFailed

	// KindExitCodeUnavailable: the child finished but its status
	// could not be retrieved.
	KindExitCodeUnavailable
)

// String returns a human-readable name for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindCommandNotFound:
		return "command_not_found"
	case KindCannotInvoke:
		return "cannot_invoke"
	case KindWaitFailed:
		return "wait_failed"
	case KindUnexpectedWaitResult:
		return "unexpected_wait_result"
	case KindTerminateFailed:
		return "terminate_failed"
	case KindPostTerminateCheckFailed:
		return "post_terminate_check_failed"
	case KindExitCodeUnavailable:
		return "exit_code_unavailable"
	default:
		return "unknown"
	}
}

// ExitCode maps the failure kind to the launcher's exit status.
func (k Kind) ExitCode() int {
	switch k {
	case KindCommandNotFound:
		return ExitNotFound
	case KindCannotInvoke:
		return ExitCannotInvoke
	default:
		return ExitInternal
	}
}

// Error is a classified launcher-level failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
