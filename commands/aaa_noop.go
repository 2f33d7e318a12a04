package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// FixedCommand always prints the same message, it's used for features the
// shell deliberately doesn't have.
type FixedCommand struct {
	Name   string
	Use    string
	Short  string
	Stdout string
}

// ToCommand converts the description to a functioning command.
func (c *FixedCommand) ToCommand() vos.ProcessFunc {
	return func(ctx context.Context, virtOS vos.VOS) error {
		cmd := &SimpleCommand{
			Use:   c.Use,
			Short: c.Short,
		}

		return cmd.RunE(virtOS, func() error {
			if c.Stdout != "" {
				fmt.Fprintln(virtOS.Stdout(), c.Stdout)
			}
			return nil
		})
	}
}

var fixedCommands = []FixedCommand{
	{
		Name:   "history",
		Use:    "history",
		Short:  "Display the command history list.",
		Stdout: "History functionality has been disabled",
	},
	{
		Name:   "jobs",
		Use:    "jobs",
		Short:  "Display status of jobs.",
		Stdout: "No job control in this shell",
	},
}

func init() {
	for _, cmd := range fixedCommands {
		mustAddCmd(cmd.Name, cmd.ToCommand())
	}
}
