package types

import "time"

// PollState is a state of the provisioning poller
type PollState int

const (
	// PollStatePending means the create response has not been validated yet
	PollStatePending PollState = iota
	// PollStatePolling means the task status is being checked
	PollStatePolling
	// PollStateCompleted means the task left the in-progress state
	PollStateCompleted
	// PollStateTimedOut means the timeout fired before the task finished
	PollStateTimedOut
	// PollStateFailed means validation or a status check failed
	PollStateFailed
)

func (s PollState) String() string {
	switch s {
	case PollStatePending:
		return "pending"
	case PollStatePolling:
		return "polling"
	case PollStateCompleted:
		return "completed"
	case PollStateTimedOut:
		return "timed_out"
	case PollStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further polling can happen from this state
func (s PollState) IsTerminal() bool {
	return s == PollStateCompleted || s == PollStateTimedOut || s == PollStateFailed
}

// ProvisioningOutcome is the terminal result of waiting for a site
type ProvisioningOutcome struct {
	State PollState

	// TaskID is the task that was polled
	TaskID string

	// TaskStatus is the last status observed, empty if none was
	TaskStatus TaskStatus

	// Polls counts status requests that returned
	Polls int

	Elapsed time.Duration
}
