package test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/instawp-action/internal/config"
	"github.com/celestiaorg/instawp-action/internal/instawp"
	"github.com/celestiaorg/instawp-action/internal/issues"
	"github.com/celestiaorg/instawp-action/internal/services"
	"github.com/celestiaorg/instawp-action/internal/types"
)

// DefaultTestTimeout is the default timeout for test suites.
const DefaultTestTimeout = 30 * time.Second

// TestPollInterval keeps polling tests fast
const TestPollInterval = 10 * time.Millisecond

// Suite encapsulates all components needed for integration testing.
// It provides a complete test setup with:
//   - Fake InstaWP and GitHub API servers
//   - A config and workflow context pointing at them
//   - An output sink recording published outputs
type Suite struct {
	t *testing.T

	InstaWP *InstaWPServer
	GitHub  *GitHubServer

	Config   *config.Config
	Workflow types.WorkflowContext
	Outputs  *OutputRecorder

	// PollInterval is used by the provisioning service Deploy builds
	PollInterval time.Duration

	ctx        context.Context
	cancelFunc context.CancelFunc
}

// NewSuite starts both fake servers and a config for a pull request run.
// The suite must be cleaned up after use by calling Cleanup.
func NewSuite(t *testing.T) *Suite {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTestTimeout)

	s := &Suite{
		t:          t,
		InstaWP:    NewInstaWPServer(),
		GitHub:     NewGitHubServer(),
		Outputs:    NewOutputRecorder(),
		ctx:        ctx,
		cancelFunc: cancel,

		PollInterval: TestPollInterval,
	}

	s.Config = &config.Config{
		GitHubToken:  "gh-test-token",
		InstaWPToken: "wp-test-token",
		Action:       string(types.ActionCreateSiteTemplateGit),
		TemplateSlug: "starter",
		RepoID:       "42",
		Timeout:      5 * time.Second,
		APIBaseURL:   s.InstaWP.URL(),
	}
	s.Workflow = types.WorkflowContext{
		Owner:             "acme",
		Repo:              "site",
		SHA:               "abcdef1234567890",
		PullRequestNumber: 7,
		APIURL:            s.GitHub.URL(),
	}

	return s
}

// Cleanup stops the servers and cancels the suite context
func (s *Suite) Cleanup() {
	s.InstaWP.Close()
	s.GitHub.Close()
	s.cancelFunc()
}

// Context returns the suite's context, which is automatically
// canceled when the suite is cleaned up.
func (s *Suite) Context() context.Context {
	return s.ctx
}

// Require returns a require.Assertions instance for this suite.
func (s *Suite) Require() *require.Assertions {
	return require.New(s.t)
}

// NewDeployService builds the deploy service against the fake servers
func (s *Suite) NewDeployService() *services.Deploy {
	client, err := instawp.NewClient(&instawp.Options{
		BaseURL: s.Config.APIBaseURL,
		Token:   s.Config.InstaWPToken,
		Timeout: 5 * time.Second,
	})
	s.Require().NoError(err)

	store, err := issues.NewClient(issues.Options{
		Owner:  s.Workflow.Owner,
		Repo:   s.Workflow.Repo,
		Token:  s.Config.GitHubToken,
		APIURL: s.Workflow.APIURL,
	})
	s.Require().NoError(err)

	provisioning := services.NewProvisioningService(client,
		services.WithTimeout(s.Config.Timeout),
		services.WithPollInterval(s.PollInterval),
	)

	return services.NewDeployService(
		s.Config,
		s.Workflow,
		client,
		provisioning,
		services.NewCommentService(store),
		s.Outputs,
	)
}

// Deploy runs one deploy against the fake servers
func (s *Suite) Deploy(ctx context.Context) (*services.DeployResult, error) {
	return s.NewDeployService().Run(ctx)
}

// OutputRecorder records step outputs
type OutputRecorder struct {
	mu      sync.Mutex
	outputs map[string]string
}

// NewOutputRecorder creates an empty OutputRecorder
func NewOutputRecorder() *OutputRecorder {
	return &OutputRecorder{outputs: map[string]string{}}
}

// SetOutput implements services.OutputSink
func (r *OutputRecorder) SetOutput(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[name] = value
}

// Outputs returns a copy of everything recorded
func (r *OutputRecorder) Outputs() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.outputs))
	for k, v := range r.outputs {
		out[k] = v
	}
	return out
}
