package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/josephlewis42/debsh/core/vos"
)

// Mv renames files, moving them into DEST when it is a directory.
func Mv(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "mv [OPTION]... SOURCE... DEST",
		Short: "Rename SOURCE to DEST, or move SOURCE(s) to DIRECTORY.",
	}

	force := cmd.Flags().BoolLong("force", 'f', "do not prompt before overwriting")

	return cmd.RunE(virtOS, func() error {
		operands := cmd.Flags().Args()
		switch len(operands) {
		case 0:
			PrintError(virtOS, "mv: missing file operand")
			fmt.Fprintln(virtOS.Stdout(), "Try 'mv --help' for more information.")
			return nil
		case 1:
			PrintError(virtOS, "mv: missing destination file operand after '%s'", operands[0])
			fmt.Fprintln(virtOS.Stdout(), "Try 'mv --help' for more information.")
			return nil
		}

		sources, dest := operands[:len(operands)-1], operands[len(operands)-1]
		destIsDir := isDir(virtOS, dest)
		if len(sources) > 1 && !destIsDir {
			PrintError(virtOS, "mv: target '%s' is not a directory", dest)
			return nil
		}

		for _, src := range sources {
			stat, err := virtOS.Stat(src)
			if err != nil {
				PrintError(virtOS, "mv: cannot stat '%s': %s", src, describeErr(err))
				continue
			}

			target := dest
			if destIsDir {
				target = filepath.Join(dest, filepath.Base(src))
			}

			if stat.IsDir() && within(virtOS, target, src) {
				PrintError(virtOS, "mv: cannot move '%s' to a subdirectory of itself, '%s'", src, target)
				continue
			}

			if !*force && exists(virtOS, target) {
				ok, err := confirmOverwrite(virtOS, "mv", target)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}

			if err := move(virtOS, src, target); err != nil {
				PrintError(virtOS, "mv: failed to move '%s': %s", src, describeErr(err))
			}
		}

		return nil
	})
}

func move(virtOS vos.VOS, src, dest string) error {
	parent, err := virtOS.Stat(filepath.Dir(dest))
	if err != nil {
		return err
	}
	if !parent.IsDir() {
		return fmt.Errorf("%s: not a directory", filepath.Dir(dest))
	}

	return virtOS.Rename(src, dest)
}

var _ vos.ProcessFunc = Mv

func init() {
	mustAddCmd("mv", Mv)
}
