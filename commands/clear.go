package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Clear homes the cursor and clears the screen, assuming a VT100
// compatible terminal.
func Clear(ctx context.Context, virtOS vos.VOS) error {
	fmt.Fprint(virtOS.Stdout(), "\033[H\033[2J")
	return nil
}

var _ vos.ProcessFunc = Clear

func init() {
	mustAddCmd("clear", Clear)
}
