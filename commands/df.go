package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

const dfRow = "%-14s %9s %7s %9s %4s %s\n"

// Df reports disk space usage for each mounted filesystem of the host.
func Df(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "df [OPTION]...",
		Short: "Show information about the file systems.",
	}

	humanSize := cmd.Flags().BoolLong("human-readable", 'h', "print sizes in powers of 1000")
	cmd.ShowHelp = cmd.Flags().BoolLong("help", '?', "show help and exit")

	return cmd.RunE(virtOS, func() error {
		host := virtOS.Host()
		partitions, err := host.Partitions(ctx)
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
		blocks := "1K-blocks"
		if *humanSize {
			blocks = "Size"
		}
		fmt.Fprintf(w, dfRow, "Filesystem", blocks, "Used", "Available", "Use%", "Mounted on")

		for _, part := range partitions {
			usage, err := host.DiskUsage(ctx, part.Mountpoint)
			if err != nil {
				fmt.Fprintf(w, dfRow, part.Device, "-", "-", "-", "-", part.Mountpoint)
				continue
			}

			fmt.Fprintf(w, dfRow,
				part.Device,
				size(usage.Total),
				size(usage.Used),
				size(usage.Free),
				fmt.Sprintf("%.0f%%", usage.UsedPercent),
				part.Mountpoint)
		}

		return nil
	})
}

// Du prints the total size of the regular files under a path in
// kilobytes.
func Du(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "du [PATH]",
		Short: "Summarize disk usage of the set of FILEs, recursively for directories.",
	}

	return cmd.RunE(virtOS, func() error {
		root := "."
		if args := cmd.Flags().Args(); len(args) > 0 {
			root = args[0]
		}

		if _, err := virtOS.Stat(root); err != nil {
			PrintError(virtOS, "du: cannot access '%s': %s", root, describeErr(err))
			return nil
		}

		var total int64
		err := walkFiles(ctx, virtOS, root, func(path string, size int64) {
			total += size
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(virtOS.Stdout(), "%d\t%s\n", total/1024, root)
		return nil
	})
}

var _ vos.ProcessFunc = Df
var _ vos.ProcessFunc = Du

func init() {
	mustAddCmd("df", Df)
	mustAddCmd("du", Du)
}
