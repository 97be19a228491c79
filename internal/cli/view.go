package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/repository"
)

var viewCmd = &cobra.Command{
	Use:   "view <app-id>",
	Short: "View detailed info about an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		app, err := appInstance.Apps.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				appInstance.Presenter.Error("App with ID '%s' not found.", id)
				return nil
			}
			return fmt.Errorf("failed to load app: %w", err)
		}

		appInstance.Presenter.AppDetail(app)
		return nil
	},
}
