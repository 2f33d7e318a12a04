package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Whoami implements the POSIX whoami command.
func Whoami(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "whoami [OPTION]...",
		Short: "Print the user name associated with the current effective user ID.",
	}

	return cmd.RunE(virtOS, func() error {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Username())
		return nil
	})
}

var _ vos.ProcessFunc = Whoami

func init() {
	mustAddCmd("whoami", Whoami)
}
