package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Which reports whether each name is a builtin. Nothing outside the shell
// can be run, so nothing else is found.
func Which(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "which [COMMAND...]",
		Short: "Locate a command.",
	}

	return cmd.RunE(virtOS, func() error {
		for _, name := range cmd.Flags().Args() {
			if _, ok := AllCommands.Lookup(name); ok {
				fmt.Fprintf(virtOS.Stdout(), "%s: shell builtin\n", name)
				continue
			}
			PrintError(virtOS, "which: no %s in (builtins)", name)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Which

func init() {
	mustAddCmd("which", Which)
}
