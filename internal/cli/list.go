package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List all apps",
	Long:  `List all apps, optionally filtered by status (development, staging, production, archived).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var filter domain.Status
		if len(args) == 1 {
			status, err := domain.ParseStatus(args[0])
			if err != nil {
				return err
			}
			filter = status
		}

		apps, err := appInstance.Apps.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list apps: %w", err)
		}

		appInstance.Presenter.ListApps(apps, filter)
		return nil
	},
}
