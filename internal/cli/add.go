package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/repository"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new app",
	Long:  `Add a new app to the tracker through an interactive prompt flow.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInteractive(); err != nil {
			return err
		}

		ctx := context.Background()
		p := appInstance.Presenter
		prompt := newStdinPrompter()

		p.Header("Add New App")

		name, err := prompt.Required("App name")
		if err != nil {
			return err
		}
		description, err := prompt.Input("Description", "")
		if err != nil {
			return err
		}

		p.Plain("\nURLs (press Enter to skip):")
		urls, err := prompt.URLPrompts(nil)
		if err != nil {
			return err
		}

		repoURL, err := prompt.Input("\nRepository URL (e.g., GitHub)", "")
		if err != nil {
			return err
		}
		techStack, err := prompt.Input("Technology stack (e.g., Go/cobra, Node.js/React)", "")
		if err != nil {
			return err
		}

		status, err := prompt.ChooseStatus()
		if err != nil {
			return err
		}

		notes, err := prompt.Input("\nNotes", "")
		if err != nil {
			return err
		}

		app, err := appInstance.Apps.Add(ctx, repository.AppInput{
			Name:        name,
			Description: description,
			URLs:        urls,
			Repository:  repoURL,
			TechStack:   techStack,
			Status:      status,
			Notes:       notes,
		})
		if err != nil {
			return fmt.Errorf("failed to add app: %w", err)
		}

		p.Plain("")
		p.Success("App '%s' added successfully!", app.Name)
		p.Info("App ID: %s", app.ID)
		p.Plain("")
		return nil
	},
}
