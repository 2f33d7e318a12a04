package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Reset reinitializes a VT100 compatible terminal, it does nothing when
// output isn't a terminal.
func Reset(ctx context.Context, virtOS vos.VOS) error {
	if virtOS.GetPTY().IsPTY {
		fmt.Fprint(virtOS.Stdout(), "\033c")
	}
	return nil
}

var _ vos.ProcessFunc = Reset

func init() {
	mustAddCmd("reset", Reset)
}
