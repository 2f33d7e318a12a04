package cmd

import (
	"time"

	"github.com/josephlewis42/debsh/core/ttylog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var maxSleep time.Duration

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore session recordings made with --record.",
}

var playCmd = &cobra.Command{
	Use:   "play FILE." + ttylog.AsciicastFileExt,
	Short: "Replay a recorded session in the terminal.",
	Long:  `Plays a recorded session back to the current terminal with its original timing.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		sink := ttylog.NewClientOutput(cmd.OutOrStdout())
		return replayFile(args[0], ttylog.NewRealTimePlayback(maxSleep, sink))
	},
}

var catCmd = &cobra.Command{
	Use:   "cat FILE." + ttylog.AsciicastFileExt,
	Short: "Print the full output of a recorded session.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		return replayFile(args[0], ttylog.NewClientOutput(cmd.OutOrStdout()))
	},
}

func replayFile(name string, sink ttylog.LogSink) error {
	fd, err := afero.NewOsFs().Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()

	return ttylog.Replay(ttylog.NewAsciicastLogSource(fd), sink)
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.AddCommand(playCmd)
	logsCmd.AddCommand(catCmd)
	playCmd.Flags().DurationVar(&maxSleep, "max-sleep", 2*time.Second, "longest pause between events, zero keeps the recorded delays")
}
