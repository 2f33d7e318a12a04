package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Pwd implements the UNIX pwd command.
func Pwd(ctx context.Context, virtOS vos.VOS) error {
	_, err := fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
	return err
}

var _ vos.ProcessFunc = Pwd

func init() {
	mustAddCmd("pwd", Pwd)
}
