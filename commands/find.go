package commands

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
)

// Find prints the files below PATH whose names contain NAME.
func Find(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "find PATH NAME",
		Short: "Search for files whose name contains NAME in a directory hierarchy.",
	}

	return cmd.RunE(virtOS, func() error {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			PrintError(virtOS, "find: missing arguments")
			return nil
		}

		root, name := args[0], args[1]
		if _, err := virtOS.Stat(root); err != nil {
			PrintError(virtOS, "find: '%s': %s", root, describeErr(err))
			return nil
		}

		w := virtOS.Stdout()
		return walkFiles(ctx, virtOS, root, func(path string, _ int64) {
			if strings.Contains(filepath.Base(path), name) {
				fmt.Fprintln(w, path)
			}
		})
	})
}

// walkFiles calls fn for every regular file below root in lexical order.
// Entries that can't be read are skipped.
func walkFiles(ctx context.Context, virtOS vos.VOS, root string, fn func(path string, size int64)) error {
	return afero.Walk(virtOS, root, func(path string, info fs.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		switch {
		case err != nil && info != nil && info.IsDir():
			return filepath.SkipDir
		case err != nil:
			return nil
		case !info.IsDir():
			fn(path, info.Size())
		}
		return nil
	})
}

var _ vos.ProcessFunc = Find

func init() {
	mustAddCmd("find", Find)
}
