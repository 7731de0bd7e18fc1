// Package services provides the steps of the deploy flow
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/instawp"
	"github.com/celestiaorg/instawp-action/internal/logger"
	"github.com/celestiaorg/instawp-action/internal/types"
)

// Provisioning waits for an InstaWP site to finish provisioning
type Provisioning struct {
	client       instawp.Client
	timeout      time.Duration
	pollInterval time.Duration
}

// ProvisioningOption configures a Provisioning service
type ProvisioningOption func(*Provisioning)

// WithTimeout sets how long WaitForSite polls before giving up
func WithTimeout(d time.Duration) ProvisioningOption {
	return func(p *Provisioning) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithPollInterval sets the delay between two status checks
func WithPollInterval(d time.Duration) ProvisioningOption {
	return func(p *Provisioning) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(client instawp.Client, opts ...ProvisioningOption) *Provisioning {
	p := &Provisioning{
		client:       client,
		timeout:      constants.DefaultTimeoutSeconds * time.Second,
		pollInterval: constants.DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// pollResult is the single slot the poll loop resolves into
type pollResult struct {
	status types.TaskStatus
	polls  int
	err    error
}

// WaitForSite validates a create response and polls its task until the task
// leaves the in-progress state or the timeout fires.
//
// The returned outcome is never nil and always carries a terminal state.
// Validation failures and status check errors end in PollStateFailed without
// retry; a timeout ends in PollStateTimedOut and wraps types.ErrTimeout.
func (p *Provisioning) WaitForSite(ctx context.Context, resp *types.CreateSiteGitResponse) (*types.ProvisioningOutcome, error) {
	outcome := &types.ProvisioningOutcome{State: types.PollStatePending}

	if err := validateCreateResponse(resp); err != nil {
		outcome.State = types.PollStateFailed
		return outcome, err
	}
	outcome.TaskID = resp.Data.TaskID

	outcome.State = types.PollStatePolling
	start := time.Now()

	pollCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// Buffered so an abandoned loop never blocks on send
	results := make(chan pollResult, 1)
	go func() {
		results <- p.pollUntilDone(pollCtx, outcome.TaskID)
	}()

	select {
	case res := <-results:
		outcome.Elapsed = time.Since(start)
		outcome.Polls = res.polls
		outcome.TaskStatus = res.status
		if res.err != nil {
			// A request cut short by the deadline still counts as a timeout
			if ctx.Err() == nil && (pollCtx.Err() != nil || errors.Is(res.err, context.DeadlineExceeded)) {
				outcome.State = types.PollStateTimedOut
				return outcome, p.timeoutError()
			}
			outcome.State = types.PollStateFailed
			return outcome, fmt.Errorf("failed to get task status: %w", res.err)
		}
		outcome.State = types.PollStateCompleted
		if !res.status.IsSuccess() {
			logger.WarnWithFields("Task finished without success", map[string]interface{}{
				"task_id": outcome.TaskID,
				"status":  res.status.String(),
			})
		}
		return outcome, nil

	case <-pollCtx.Done():
		outcome.Elapsed = time.Since(start)
		if err := ctx.Err(); err != nil {
			outcome.State = types.PollStateFailed
			return outcome, err
		}
		outcome.State = types.PollStateTimedOut
		return outcome, p.timeoutError()
	}
}

func (p *Provisioning) timeoutError() error {
	return fmt.Errorf("%w after %s", types.ErrTimeout, p.timeout)
}

// pollUntilDone checks the task status until it is no longer in progress.
// It returns as soon as ctx is done, so a loop that lost the race against
// the timeout stops at its next wait.
func (p *Provisioning) pollUntilDone(ctx context.Context, taskID string) pollResult {
	polls := 0
	timer := time.NewTimer(p.pollInterval)
	timer.Stop()
	defer timer.Stop()

	for {
		status, err := p.client.GetTaskStatus(ctx, taskID)
		if err != nil {
			return pollResult{polls: polls, err: err}
		}
		polls++

		if status.Data == nil {
			return pollResult{polls: polls, err: types.NewMissingFieldError("data", status.Message)}
		}

		if !status.Data.Status.IsInProgress() {
			logger.Infof("Task %s finished with status %s", taskID, status.Data.Status)
			return pollResult{status: status.Data.Status, polls: polls}
		}

		logger.Info("Waiting for site creation...")
		timer.Reset(p.pollInterval)
		select {
		case <-ctx.Done():
			return pollResult{status: status.Data.Status, polls: polls, err: ctx.Err()}
		case <-timer.C:
		}
	}
}

// validateCreateResponse checks the fields later stages depend on
func validateCreateResponse(resp *types.CreateSiteGitResponse) error {
	if resp == nil {
		return types.NewMissingFieldError("data", "No data returned from InstaWP API")
	}
	if resp.Data == nil {
		msg := resp.Message
		if msg == "" {
			msg = "No data returned from InstaWP API"
		}
		return types.NewMissingFieldError("data", msg)
	}
	switch {
	case resp.Data.TaskID == "":
		return types.NewMissingFieldError("task_id", resp.Message)
	case resp.Data.WPURL == "":
		return types.NewMissingFieldError("wp_url", resp.Message)
	case resp.Data.SHash == "":
		return types.NewMissingFieldError("s_hash", resp.Message)
	}
	return nil
}
