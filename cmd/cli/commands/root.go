package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/celestiaorg/instawp-action/internal/actions"
	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/logger"
)

// flag names
const (
	flagAPIURL  = "api-url"
	flagTimeout = "timeout"
)

var (
	// apiURL holds the InstaWP API base URL. PersistentPreRunE applies the env override.
	apiURL string
	// timeout overrides the timeout-seconds input when the flag is set
	timeout time.Duration

	// newRunner builds the runner commands read inputs from; tests replace it
	newRunner = func() *actions.Runner { return actions.New() }
)

func init() {
	RootCmd.PersistentFlags().StringVar(&apiURL, flagAPIURL, constants.InstaWPAPIBase, "InstaWP API base URL (env: INSTAWP_API_URL)")
	RootCmd.PersistentFlags().DurationVar(&timeout, flagTimeout, constants.DefaultTimeoutSeconds*time.Second, "How long to wait for provisioning (overrides the timeout-seconds input)")

	RootCmd.AddCommand(GetDeployCmd())
	RootCmd.AddCommand(GetTaskStatusCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "instawp",
	Short: "InstaWP action - WordPress preview sites for pull requests",
	Long: `instawp creates an InstaWP site from a git-backed template for the current
commit, waits for it to provision, publishes its URLs as step outputs and keeps
one deployment comment up to date on the pull request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// A missing .env is the normal case on a runner
		_ = godotenv.Load()

		logger.InitializeAndConfigure()

		// Flag > Env Var > Default
		if !cmd.Flags().Changed(flagAPIURL) {
			if envURL := os.Getenv(constants.EnvInstaWPAPIURL); envURL != "" {
				apiURL = envURL
			}
		}
		if apiURL == "" {
			return fmt.Errorf("%s cannot be empty", flagAPIURL)
		}
		logger.Debugf("InstaWP API: %s", apiURL)
		return nil
	},
}

// reportedError marks an error the runner has already annotated
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// Execute runs the root command and logs the error that ended it
func Execute() error {
	err := RootCmd.Execute()
	reportError(err)
	return err
}

// reportError logs err unless the runner has already reported it
func reportError(err error) {
	if err == nil {
		return
	}
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	logger.Error(err)
}
