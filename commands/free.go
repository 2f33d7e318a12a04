package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

// Free reports memory and swap usage of the host.
func Free(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "free [OPTION]...",
		Short: "Display amount of free and used memory in the system.",
	}

	humanSize := cmd.Flags().BoolLong("human-readable", 'h', "print human readable sizes")
	cmd.ShowHelp = cmd.Flags().BoolLong("help", '?', "show help and exit")

	return cmd.RunE(virtOS, func() error {
		memory, err := virtOS.Host().Memory(ctx)
		if err != nil {
			return err
		}
		swap, err := virtOS.Host().Swap(ctx)
		if err != nil {
			return err
		}

		size := func(bytes uint64) string {
			if *humanSize {
				return BytesToHuman(int64(bytes))
			}
			return fmt.Sprint(bytes / 1024)
		}

		w := virtOS.Stdout()
		writeRow := func(cols ...string) {
			row := fmt.Sprintf("%-7s", cols[0])
			for _, col := range cols[1:] {
				row += fmt.Sprintf("%12s", col)
			}
			fmt.Fprintln(w, strings.TrimRight(row, " "))
		}

		writeRow("", "total", "used", "free", "shared", "buff/cache", "available")
		writeRow("Mem:",
			size(memory.Total),
			size(memory.Used),
			size(memory.Free),
			size(memory.Shared),
			size(memory.Buffers+memory.Cached),
			size(memory.Available))
		writeRow("Swap:", size(swap.Total), size(swap.Used), size(swap.Free))

		return nil
	})
}

var _ vos.ProcessFunc = Free

func init() {
	mustAddCmd("free", Free)
}
