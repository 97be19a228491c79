package cli

import (
	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse apps in a terminal UI",
	Long:  `Launch a read-only terminal UI for browsing the app inventory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(appInstance)
	},
}
