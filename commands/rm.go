package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/josephlewis42/debsh/core/vos"
)

// Rm implements a POSIX rm command.
func Rm(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "rm [OPTION...] FILE...",
		Short: "Remove files or directories.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively")
	recursiveAlias := cmd.Flags().Bool('R', "same as -r")
	force := cmd.Flags().BoolLong("force", 'f', "ignore missing files and arguments, never prompt")

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			if *force {
				return nil
			}
			PrintError(virtOS, "rm: missing operand")
			fmt.Fprintln(virtOS.Stdout(), "Try 'rm --help' for more information.")
			return nil
		}

		for _, file := range files {
			stat, statErr := virtOS.Stat(file)
			switch {
			case errors.Is(statErr, fs.ErrNotExist):
				if !*force {
					PrintError(virtOS, "rm: cannot remove '%s': No such file or directory", file)
				}
			case statErr != nil:
				PrintError(virtOS, "rm: cannot remove '%s': %s", file, describeErr(statErr))
			case stat.IsDir():
				if !*recursive && !*recursiveAlias {
					PrintError(virtOS, "rm: cannot remove '%s': Is a directory", file)
					continue
				}
				if err := virtOS.RemoveAll(file); err != nil && !*force {
					PrintError(virtOS, "rm: cannot remove '%s': %s", file, describeErr(err))
				}
			default:
				if err := virtOS.Remove(file); err != nil && !*force {
					PrintError(virtOS, "rm: cannot remove '%s': %s", file, describeErr(err))
				}
			}
		}

		return nil
	})
}

var _ vos.ProcessFunc = Rm

func init() {
	mustAddCmd("rm", Rm)
}
