package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casey/apptrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show where apptrack keeps its files",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := appInstance.Presenter
		p.Plain("Config file: %s", config.DefaultConfigPath())
		p.Plain("Data file:   %s", appInstance.Store.Path())
		p.Plain("Export file: %s", appInstance.Config.Export.Path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to the config file for editing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.SaveConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		appInstance.Presenter.Success("Config written to %s", config.DefaultConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
