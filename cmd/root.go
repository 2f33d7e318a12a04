package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/josephlewis42/debsh/core/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig   = "config"
	flagColor    = "color"
	flagPageSize = "page-size"
	flagRecord   = "record"
)

// Version is set via -ldflags.
var Version = "dev"

// rootCmd runs the interactive shell when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "debsh",
	Short: "A Debian flavored interactive shell.",
	Long: `debsh is an interactive shell with a fixed set of builtin commands
modeled on a Debian system. Commands run against the local filesystem and
report on the local machine, nothing is ever executed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		env, err := newShellEnv(true)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Shell.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return env.RecordingErr()
	},
}

// loadConfig loads the config directory and applies flag and DEBSH_*
// environment overrides.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(viper.GetString(flagConfig))
	if err != nil {
		return nil, err
	}

	if viper.IsSet(flagColor) {
		configuration.Color = viper.GetString(flagColor)
	}
	if viper.IsSet(flagPageSize) {
		configuration.Pager.PageSize = viper.GetInt(flagPageSize)
	}

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return configuration, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, ".", "configuration directory")
	flags.String(flagColor, config.ColorAuto, "colorize output: auto, always or never")
	flags.Int(flagPageSize, 0, "lines shown by less before pausing")
	flags.String(flagRecord, "", "record the session to an asciicast file")

	viper.SetEnvPrefix("debsh")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(flags))
}
