package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/instawp-action/internal/actions"
	"github.com/celestiaorg/instawp-action/internal/config"
	"github.com/celestiaorg/instawp-action/internal/instawp"
	"github.com/celestiaorg/instawp-action/internal/issues"
	"github.com/celestiaorg/instawp-action/internal/services"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Run the action step",
	Long: `deploy reads the step inputs from the runner environment, performs the
requested action and reports a failure as an error annotation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		runner := newRunner()

		cfg := config.Load(runner.Input)
		cfg.APIBaseURL = apiURL
		if cmd.Flags().Changed(flagTimeout) {
			cfg.Timeout = timeout
		}
		runner.Mask(cfg.Secrets()...)

		if err := runDeploy(cmd.Context(), runner, cfg); err != nil {
			runner.Fail(err)
			return &reportedError{err: err}
		}
		return nil
	},
}

// GetDeployCmd returns the deploy command
func GetDeployCmd() *cobra.Command {
	return deployCmd
}

func runDeploy(ctx context.Context, runner *actions.Runner, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	workflow, err := runner.WorkflowContext()
	if err != nil {
		return err
	}

	client, err := instawp.NewClient(&instawp.Options{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.InstaWPToken,
		Timeout: instawp.DefaultTimeout,
	})
	if err != nil {
		return fmt.Errorf("error creating InstaWP client: %w", err)
	}

	comments, err := issues.NewClient(issues.Options{
		Owner:  workflow.Owner,
		Repo:   workflow.Repo,
		Token:  cfg.GitHubToken,
		APIURL: workflow.APIURL,
	})
	if err != nil {
		return fmt.Errorf("error creating GitHub client: %w", err)
	}

	deploy := services.NewDeployService(
		cfg,
		workflow,
		client,
		services.NewProvisioningService(client, services.WithTimeout(cfg.Timeout)),
		services.NewCommentService(comments),
		runner,
	)

	_, err = deploy.Run(ctx)
	return err
}
