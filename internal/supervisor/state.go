// Package supervisor owns the lifecycle of a single time-budgeted
// child process: create, wait with a deadline, terminate on expiry,
// collect the exit status, and release OS handles on every path.
package supervisor

// State represents the current state of a supervised child.
type State int

const (
	// StateCreated is the initial state before the child has spawned.
	StateCreated State = iota

	// StateWaiting indicates the bounded wait on the child is in progress.
	StateWaiting

	// StateTimedOut indicates the budget elapsed and the child was terminated.
	StateTimedOut

	// StateCompleted indicates the child exited within the budget.
	StateCompleted

	// StateFailed indicates a launcher-level failure ended the run.
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateWaiting:
		return "waiting"
	case StateTimedOut:
		return "timed_out"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the run has reached its final state.
func (s State) IsTerminal() bool {
	return s == StateTimedOut || s == StateCompleted || s == StateFailed
}
