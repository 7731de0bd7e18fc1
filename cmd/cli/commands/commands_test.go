package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/instawp-action/internal/actions"
	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/logger"
	"github.com/celestiaorg/instawp-action/internal/types"
	"github.com/celestiaorg/instawp-action/test"
)

// execute runs the root command with fresh flag state and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	apiURL = constants.InstaWPAPIBase
	timeout = constants.DefaultTimeoutSeconds * time.Second
	reset := func(f *pflag.Flag) { f.Changed = false }
	RootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	_ = taskStatusCmd.Flags().Set(flagToken, "")
	taskStatusCmd.Flags().Lookup(flagToken).Changed = false

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

// runnerEnv is a fake step environment for a pull request run
type runnerEnv struct {
	vars       map[string]string
	outputPath string
	log        bytes.Buffer
}

func newRunnerEnv(t *testing.T, gh *test.GitHubServer) *runnerEnv {
	t.Helper()
	dir := t.TempDir()

	eventPath := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(eventPath, []byte(`{"pull_request":{"number":7}}`), 0o600))
	outputPath := filepath.Join(dir, "output")
	require.NoError(t, os.WriteFile(outputPath, nil, 0o600))

	env := &runnerEnv{
		outputPath: outputPath,
		vars: map[string]string{
			"INPUT_GITHUB-TOKEN":          "gh-secret",
			"INPUT_INSTAWP-TOKEN":         "wp-secret",
			"INPUT_INSTAWP-ACTION":        string(types.ActionCreateSiteTemplateGit),
			"INPUT_INSTAWP-TEMPLATE-SLUG": "starter",
			"INPUT_REPO-ID":               "42",
			"GITHUB_REPOSITORY":           "acme/site",
			"GITHUB_SHA":                  "abcdef1234567890",
			"GITHUB_EVENT_PATH":           eventPath,
			"GITHUB_API_URL":              gh.URL(),
			"GITHUB_OUTPUT":               outputPath,
		},
	}

	prev := newRunner
	newRunner = func() *actions.Runner {
		return actions.New(
			githubactions.WithGetenv(func(key string) string { return env.vars[key] }),
			githubactions.WithWriter(&env.log),
		)
	}
	t.Cleanup(func() { newRunner = prev })
	return env
}

func (e *runnerEnv) outputs(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.outputPath)
	require.NoError(t, err)
	return string(data)
}

func findCommand(cmds []*cobra.Command, name string) *cobra.Command {
	for _, c := range cmds {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, findCommand(RootCmd.Commands(), "deploy"))
	assert.NotNil(t, findCommand(RootCmd.Commands(), "task-status"))

	for _, name := range []string{flagAPIURL, flagTimeout} {
		assert.NotNil(t, RootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestAPIURLPrecedence(t *testing.T) {
	srv := test.NewInstaWPServer()
	defer srv.Close()
	t.Setenv(constants.EnvInstaWPToken, "wp-secret")

	t.Run("env over default", func(t *testing.T) {
		t.Setenv(constants.EnvInstaWPAPIURL, srv.URL())

		_, err := execute(t, "task-status", "--task-id", test.TestTaskID)
		require.NoError(t, err)
		assert.Equal(t, srv.URL(), apiURL)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv(constants.EnvInstaWPAPIURL, "http://127.0.0.1:1")

		_, err := execute(t, "task-status", "--task-id", test.TestTaskID, "--api-url", srv.URL())
		require.NoError(t, err)
		assert.Equal(t, srv.URL(), apiURL)
	})

	assert.Len(t, srv.StatusRequests(), 2)
}

func TestDeployCommand(t *testing.T) {
	srv := test.NewInstaWPServer()
	defer srv.Close()
	gh := test.NewGitHubServer()
	defer gh.Close()
	env := newRunnerEnv(t, gh)

	_, err := execute(t, "deploy", "--api-url", srv.URL())
	require.NoError(t, err)

	require.Len(t, srv.CreateRequests(), 1)
	assert.Equal(t, "acme-site-abcdef1234567890", srv.CreateRequests()[0].SiteName)
	assert.Equal(t, 7, srv.CreateRequests()[0].PRNum)
	for _, h := range srv.AuthHeaders() {
		assert.Equal(t, "Bearer wp-secret", h)
	}

	outputs := env.outputs(t)
	assert.Contains(t, outputs, constants.OutputInstaWPURL)
	assert.Contains(t, outputs, test.TestSiteURL)
	assert.Contains(t, outputs, "https://app.instawp.io/wordpress-auto-login?site="+test.TestSHash)

	comments := gh.Comments(7)
	require.Len(t, comments, 1)
	assert.True(t, strings.HasPrefix(comments[0].Body, constants.CommentMarker))

	log := env.log.String()
	assert.Contains(t, log, "::add-mask::gh-secret")
	assert.Contains(t, log, "::add-mask::wp-secret")
	assert.NotContains(t, log, "::error::")
}

func TestDeployCommandFailures(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid action",
			env:     map[string]string{"INPUT_INSTAWP-ACTION": "bogus"},
			wantErr: "Invalid action: bogus",
		},
		{
			name:    "invalid action without token",
			env:     map[string]string{"INPUT_INSTAWP-ACTION": "launch-rocket", "INPUT_INSTAWP-TOKEN": ""},
			wantErr: "Invalid action: launch-rocket. Must be one of: create-site-template-git, create-site-template, destroy-site",
		},
		{
			name:    "missing token",
			env:     map[string]string{"INPUT_INSTAWP-TOKEN": ""},
			wantErr: constants.InputInstaWPToken + " is required",
		},
		{
			name:    "missing repository",
			env:     map[string]string{"GITHUB_REPOSITORY": ""},
			wantErr: "GITHUB_REPOSITORY is not set",
		},
		{
			name:    "not implemented",
			env:     map[string]string{"INPUT_INSTAWP-ACTION": "destroy-site"},
			wantErr: "destroy-site has not been implemented yet.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := test.NewInstaWPServer()
			defer srv.Close()
			gh := test.NewGitHubServer()
			defer gh.Close()
			env := newRunnerEnv(t, gh)
			for k, v := range tt.env {
				env.vars[k] = v
			}

			_, err := execute(t, "deploy", "--api-url", srv.URL())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, env.log.String(), "::error::"+tt.wantErr)
			assert.Equal(t, 1, strings.Count(env.log.String(), "::error::"))

			var reported *reportedError
			assert.True(t, errors.As(err, &reported), "deploy failures are annotated by the runner")

			assert.Zero(t, srv.RequestCount())
			assert.Empty(t, env.outputs(t))
		})
	}
}

func TestDeployCommandTimeoutFlag(t *testing.T) {
	srv := test.NewInstaWPServer()
	defer srv.Close()
	srv.SetStatuses(types.TaskStatusProgress)
	gh := test.NewGitHubServer()
	defer gh.Close()
	env := newRunnerEnv(t, gh)
	env.vars["INPUT_TIMEOUT-SECONDS"] = "600"

	_, err := execute(t, "deploy", "--api-url", srv.URL(), "--timeout", "300ms")
	require.ErrorIs(t, err, types.ErrTimeout)
	assert.Contains(t, err.Error(), "300ms")
	assert.Empty(t, env.outputs(t))
	assert.Empty(t, gh.Comments(7))
}

func TestTaskStatusCommand(t *testing.T) {
	srv := test.NewInstaWPServer()
	defer srv.Close()
	srv.SetStatuses(types.TaskStatusProgress)

	out, err := execute(t, "task-status", "--api-url", srv.URL(), "--task-id", test.TestTaskID, "--token", "wp-secret")
	require.NoError(t, err)

	var resp types.TaskStatusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, types.TaskStatusProgress, resp.Data.Status)
	assert.Equal(t, []string{test.TestTaskID}, srv.StatusRequests())
	assert.Equal(t, []string{"Bearer wp-secret"}, srv.AuthHeaders())
}

func TestTaskStatusCommandRequiresToken(t *testing.T) {
	t.Setenv(constants.EnvInstaWPToken, "")

	_, err := execute(t, "task-status", "--task-id", test.TestTaskID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InstaWP token is required")
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	reportError(nil)
	assert.Empty(t, buf.String())

	reportError(&reportedError{err: errors.New("already annotated")})
	assert.Empty(t, buf.String(), "runner-reported failures are not logged again")

	reportError(errors.New("task-status failed"))
	assert.Equal(t, 1, strings.Count(buf.String(), "task-status failed"))
}
