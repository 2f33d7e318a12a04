package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/josephlewis42/debsh/core/vos"
)

// Mkdir creates directories along with any missing parents. Existing
// directories are left alone.
func Mkdir(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "mkdir [OPTION...] DIRECTORY...",
		Short: "Create directories if they don't exist.",
	}

	verbose := cmd.Flags().BoolLong("verbose", 'v', "print line for every created directory")

	return cmd.RunE(virtOS, func() error {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			PrintError(virtOS, "mkdir: missing operand")
			return nil
		}

		for _, dir := range directories {
			stat, err := virtOS.Stat(dir)
			switch {
			case err == nil && stat.IsDir():
				continue
			case err == nil:
				err = fs.ErrExist
			case errors.Is(err, fs.ErrNotExist):
				err = virtOS.MkdirAll(dir, 0755)
			}

			switch {
			case err != nil:
				PrintError(virtOS, "mkdir: cannot create directory '%s': %s", dir, describeErr(err))
			case *verbose:
				fmt.Fprintf(virtOS.Stdout(), "mkdir: created directory '%s'\n", dir)
			}
		}

		return nil
	})
}

var _ vos.ProcessFunc = Mkdir

func init() {
	mustAddCmd("mkdir", Mkdir)
}
