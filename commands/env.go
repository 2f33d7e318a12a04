package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Env prints the session environment sorted by name.
func Env(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "env",
		Short: "Print the environment.",
	}

	return cmd.RunE(virtOS, func() error {
		for _, envDef := range virtOS.Environ() {
			fmt.Fprintln(virtOS.Stdout(), envDef)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Env

func init() {
	mustAddCmd("env", Env)
}
