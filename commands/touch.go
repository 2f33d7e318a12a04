package commands

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/josephlewis42/debsh/core/vos"
)

// Touch updates file times, creating files that don't exist.
func Touch(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "touch [OPTION]... FILE...",
		Short: "Update the access and modification times of each FILE to the current time.",
	}

	noCreate := cmd.Flags().BoolLong("no-create", 'c', "do not create any files")

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			PrintError(virtOS, "touch: missing file operand")
			return nil
		}

		now := virtOS.Now()
		for _, file := range files {
			err := virtOS.Chtimes(file, now, now)
			if errors.Is(err, fs.ErrNotExist) {
				if *noCreate {
					continue
				}
				err = createFile(virtOS, file)
			}

			if err != nil {
				PrintError(virtOS, "touch: cannot touch '%s': %s", file, describeErr(err))
			}
		}

		return nil
	})
}

// createFile creates an empty file, the parent directory must exist.
func createFile(virtOS vos.VOS, name string) error {
	parent, err := virtOS.Stat(filepath.Dir(name))
	switch {
	case err != nil:
		return err
	case !parent.IsDir():
		return &fs.PathError{Op: "open", Path: name, Err: syscall.ENOTDIR}
	}

	fd, err := virtOS.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return fd.Close()
}

var _ vos.ProcessFunc = Touch

func init() {
	mustAddCmd("touch", Touch)
}
