package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

const mib = 1024 * 1024

// Lsmem summarizes memory of the host in megabytes.
func Lsmem(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "lsmem",
		Short: "List the ranges of available memory.",
	}

	return cmd.RunE(virtOS, func() error {
		memory, err := virtOS.Host().Memory(ctx)
		if err != nil {
			return err
		}

		w := virtOS.Stdout()
		fmt.Fprintf(w, "Total:        %d MB\n", memory.Total/mib)
		fmt.Fprintf(w, "Used:         %d MB\n", (memory.Total-memory.Free)/mib)
		fmt.Fprintf(w, "Free:         %d MB\n", memory.Free/mib)
		fmt.Fprintf(w, "Available:    %d MB\n", memory.Available/mib)
		return nil
	})
}

var _ vos.ProcessFunc = Lsmem

func init() {
	mustAddCmd("lsmem", Lsmem)
}
