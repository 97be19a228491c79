package cli

import (
	"github.com/casey/apptrack/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "apptrack",
	Short: "Keep track of your applications",
	Long: `Apptrack keeps an inventory of your applications: URLs per environment,
repository links, tech stacks, lifecycle status, and notes.

Everything lives in a single JSON document you own. Run 'apptrack tui' for an
interactive browser, or use the subcommands below.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
