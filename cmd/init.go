package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/josephlewis42/debsh/core/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd writes the default configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration in the config directory.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{})

		_, err := config.Initialize(viper.GetString(flagConfig), logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
