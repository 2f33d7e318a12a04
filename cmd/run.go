package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var runLine string

// runCmd executes commands without line editing, either a single line given
// with -c or every line read from stdin.
var runCmd = &cobra.Command{
	Use:   "run [-c LINE]",
	Short: "Run commands non-interactively.",
	Long: `Run a single command line given with -c, or every line read from
standard input, then exit.`,
	Example: `  debsh run -c 'ls -l /etc'
  printf 'pwd\nwhoami\n' | debsh run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		env, err := newShellEnv(false)
		if err != nil {
			return err
		}
		defer env.Close()

		if !cmd.Flags().Changed("command") {
			if err := env.Shell.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return env.RecordingErr()
		}

		env.Shell.Execute(cmd.Context(), runLine)
		return env.RecordingErr()
	},
}

func init() {
	runCmd.Flags().StringVarP(&runLine, "command", "c", "", "command line to run")
	rootCmd.AddCommand(runCmd)
}
