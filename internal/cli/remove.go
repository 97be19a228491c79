package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/presenter"
	"github.com/casey/apptrack/internal/repository"
)

// confirmToken is the literal input required before anything is deleted.
const confirmToken = "yes"

var removeCmd = &cobra.Command{
	Use:   "remove <app-id>",
	Short: "Remove an app",
	Long:  `Remove an app from the tracker. Requires typing 'yes' to confirm.`,
	Args:  cobra.ExactArgs(1),
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

		confirmed, err := confirmRemoval(prompt, p, app.Name, app.ID)
		if err != nil {
			return err
		}
		if !confirmed {
			p.Info("Removal cancelled.")
			return nil
		}

		if err := appInstance.Apps.Remove(ctx, id); err != nil {
			return fmt.Errorf("failed to remove app: %w", err)
		}

		p.Success("App '%s' removed successfully!", app.Name)
		p.Plain("")
		return nil
	},
}

// confirmRemoval asks for the literal confirmation token. Nothing may be
// deleted unless this returns true.
func confirmRemoval(prompt *Prompter, p *presenter.Presenter, name, id string) (bool, error) {
	p.Warning("About to remove app: %s (%s)", name, id)
	confirm, err := prompt.Input("Type 'yes' to confirm", "")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(confirm, confirmToken), nil
}
