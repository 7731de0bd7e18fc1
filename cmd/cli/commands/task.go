package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/instawp-action/internal/constants"
	"github.com/celestiaorg/instawp-action/internal/instawp"
)

// Task flag names
const (
	flagTaskID = "task-id"
	flagToken  = "token"
)

func init() {
	taskStatusCmd.Flags().String(flagTaskID, "", "InstaWP task ID")
	taskStatusCmd.Flags().String(flagToken, "", "InstaWP API token (env: INSTAWP_TOKEN)")
	_ = taskStatusCmd.MarkFlagRequired(flagTaskID)
}

var taskStatusCmd = &cobra.Command{
	Use:   "task-status",
	Short: "Print the status of an InstaWP task",
	RunE: func(cmd *cobra.Command, _ []string) error {
		taskID, err := cmd.Flags().GetString(flagTaskID)
		if err != nil {
			return fmt.Errorf("error getting task ID flag: %w", err)
		}
		if taskID == "" {
			return fmt.Errorf("%s cannot be empty", flagTaskID)
		}

		token, _ := cmd.Flags().GetString(flagToken)
		if token == "" {
			token = os.Getenv(constants.EnvInstaWPToken)
		}
		if token == "" {
			return fmt.Errorf("an InstaWP token is required (--%s or %s)", flagToken, constants.EnvInstaWPToken)
		}

		client, err := instawp.NewClient(&instawp.Options{
			BaseURL: apiURL,
			Token:   token,
			Timeout: instawp.DefaultTimeout,
		})
		if err != nil {
			return fmt.Errorf("error creating InstaWP client: %w", err)
		}

		status, err := client.GetTaskStatus(cmd.Context(), taskID)
		if err != nil {
			return fmt.Errorf("error getting task status: %w", err)
		}

		out, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("error formatting output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// GetTaskStatusCmd returns the task-status command
func GetTaskStatusCmd() *cobra.Command {
	return taskStatusCmd
}
