package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Hostname prints the name of the host.
func Hostname(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "hostname",
		Short: "Show the system's host name.",
	}

	return cmd.RunE(virtOS, func() error {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Hostname())
		return nil
	})
}

var _ vos.ProcessFunc = Hostname

func init() {
	mustAddCmd("hostname", Hostname)
}
