// Package actions connects the deploy flow to the GitHub Actions runner:
// inputs, outputs, secret masking, failure annotations and the event payload.
package actions

import (
	"errors"
	"fmt"

	"github.com/sethvargo/go-githubactions"

	"github.com/celestiaorg/instawp-action/internal/types"
)

// Runner wraps the runner's workflow command interface
type Runner struct {
	action *githubactions.Action
}

// New creates a Runner. Options are passed to githubactions.New.
func New(opts ...githubactions.Option) *Runner {
	return &Runner{action: githubactions.New(opts...)}
}

// Input returns the value of a step input
func (r *Runner) Input(name string) string {
	return r.action.GetInput(name)
}

// SetOutput publishes a step output
func (r *Runner) SetOutput(name, value string) {
	r.action.SetOutput(name, value)
}

// Mask registers values the runner must redact from logs
func (r *Runner) Mask(secrets ...string) {
	for _, s := range secrets {
		if s != "" {
			r.action.AddMask(s)
		}
	}
}

// Fail reports the run's failure reason as an error annotation. The caller
// is responsible for the exit status.
func (r *Runner) Fail(err error) {
	r.action.Errorf("%s", err.Error())
}

// WorkflowContext reads the repository coordinates and pull request number
// of the current run
func (r *Runner) WorkflowContext() (types.WorkflowContext, error) {
	ghctx, err := r.action.Context()
	if err != nil {
		return types.WorkflowContext{}, fmt.Errorf("failed to read workflow context: %w", err)
	}

	owner, repo := ghctx.Repo()
	if owner == "" || repo == "" {
		return types.WorkflowContext{}, errors.New("GITHUB_REPOSITORY is not set")
	}

	return types.WorkflowContext{
		Owner:             owner,
		Repo:              repo,
		SHA:               ghctx.SHA,
		PullRequestNumber: PullRequestNumber(ghctx.Event),
		APIURL:            ghctx.APIURL,
	}, nil
}

// PullRequestNumber extracts pull_request.number from an event payload,
// returning 0 when the event is not about a pull request
func PullRequestNumber(event map[string]any) int {
	pr, ok := event["pull_request"].(map[string]any)
	if !ok {
		return 0
	}
	switch n := pr["number"].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
