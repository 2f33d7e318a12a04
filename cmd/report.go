package cmd

import (
	"fmt"

	"github.com/josephlewis42/debsh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a report of the recorded events.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := config.ReadAppLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
