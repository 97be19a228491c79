package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/repository"
)

var editCmd = &cobra.Command{
	Use:   "edit <app-id>",
	Short: "Edit an existing app",
	Long: `Edit an existing app through an interactive prompt flow. Each prompt is
pre-filled with the current value; press Enter to keep it. Enter '-' to clear
a URL slot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}

		ctx := context.Background()
		id := args[0]
		p := appInstance.Presenter
		prompt := newStdinPrompter()

		app, err := appInstance.Apps.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				p.Error("App with ID '%s' not found.", id)
				return nil
			}
			return fmt.Errorf("failed to load app: %w", err)
		}

		p.Header("Edit App: " + app.Name)
		p.Plain("Press Enter to keep current value, or type new value to update")
		p.Plain("")

		name, err := prompt.Input("App name", app.Name)
		if err != nil {
			return err
		}
		description, err := prompt.Input("Description", app.Description)
		if err != nil {
			return err
		}

		p.Plain("\nURLs:")
		urls, err := prompt.URLPrompts(app.URLs)
		if err != nil {
			return err
		}

		repoURL, err := prompt.Input("\nRepository URL", app.Repository)
		if err != nil {
			return err
		}
		techStack, err := prompt.Input("Technology stack", app.TechStack)
		if err != nil {
			return err
		}

		status, err := prompt.ChooseStatusDefault(app.Status)
		if err != nil {
			return err
		}

		notes, err := prompt.Input("\nNotes", app.Notes)
		if err != nil {
			return err
		}

		updated, err := appInstance.Apps.Update(ctx, id, repository.AppChanges{
			Name:        &name,
			Description: &description,
			URLs:        urls,
			Repository:  &repoURL,
			TechStack:   &techStack,
			Status:      &status,
			Notes:       &notes,
		})
		if err != nil {
			return fmt.Errorf("failed to update app: %w", err)
		}

		p.Plain("")
		p.Success("App '%s' updated successfully!", updated.Name)
		p.Plain("")
		return nil
	},
}
