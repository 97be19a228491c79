package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/presenter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export apps list to markdown",
	Long:  `Write a Markdown summary of all apps, grouped by status, next to the data file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p := appInstance.Presenter

		apps, err := appInstance.Apps.List(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to list apps: %w", err)
		}

		if len(apps) == 0 {
			p.Info("No apps to export.")
			return nil
		}

		doc := presenter.RenderMarkdown(apps, time.Now())
		outPath := appInstance.Config.Export.Path
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		p.Success("Apps exported to %s", outPath)
		p.Plain("")
		return nil
	},
}
