package commands

import (
	"context"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
)

// Rmdir implements a POSIX rmdir command.
func Rmdir(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "rmdir [OPTION...] DIRECTORY...",
		Short: "Remove empty directories.",
	}

	verbose := cmd.Flags().BoolLong("verbose", 'v', "print line for every deleted directory")

	return cmd.RunE(virtOS, func() error {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			PrintError(virtOS, "rmdir: missing operand")
			return nil
		}

		for _, dir := range directories {
			if err := removeEmptyDir(virtOS, dir); err != nil {
				PrintError(virtOS, "rmdir: failed to remove '%s': %s", dir, describeErr(err))
				continue
			}

			if *verbose {
				fmt.Fprintf(virtOS.Stdout(), "rmdir: removing directory, '%s'\n", dir)
			}
		}

		return nil
	})
}

func removeEmptyDir(virtOS vos.VOS, dir string) error {
	stat, err := virtOS.Stat(dir)
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: dir, Err: syscall.ENOTDIR}
	}

	// Not every filesystem refuses to remove a directory with children.
	empty, err := afero.IsEmpty(virtOS, dir)
	if err != nil {
		return err
	}
	if !empty {
		return &fs.PathError{Op: "rmdir", Path: dir, Err: syscall.ENOTEMPTY}
	}

	return virtOS.Remove(dir)
}

var _ vos.ProcessFunc = Rmdir

func init() {
	mustAddCmd("rmdir", Rmdir)
}
