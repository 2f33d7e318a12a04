package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
)

// Tree prints the contents of a directory as an indented tree, down to
// tree.max_depth levels.
func Tree(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "tree [OPTION]... [DIRECTORY]",
		Short: "List contents of directories in a tree-like format.",
	}

	var colorPrinter ColorPrinter
	colorPrinter.Init(cmd.Flags(), virtOS)
	maxDepth := cmd.Flags().IntLong("level", 'L', virtOS.Config().Tree.MaxDepth, "descend only level directories deep")

	return cmd.RunE(virtOS, func() error {
		root := "."
		if args := cmd.Flags().Args(); len(args) > 0 {
			root = args[0]
		}

		w := virtOS.Stdout()

		var walk func(dir string, level int) error
		walk = func(dir string, level int) error {
			if level > *maxDepth {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			prefix := ""
			if level > 0 {
				prefix = strings.Repeat("│   ", level-1) + "├── "
			}

			entries, err := afero.ReadDir(virtOS, dir)
			switch {
			case errors.Is(err, fs.ErrPermission):
				fmt.Fprintln(w, prefix+colorPrinter.Sprintf(ColorRed, "[Permission denied]"))
				return nil
			case err != nil:
				PrintError(virtOS, "tree: %s", formatErr(err))
				return nil
			}

			for _, entry := range entries {
				if !entry.IsDir() {
					fmt.Fprintln(w, prefix+colorPrinter.Sprintf(ColorGreen, "%s", entry.Name()))
					continue
				}

				fmt.Fprintln(w, prefix+colorPrinter.Sprintf(ColorBlue, "%s", entry.Name()))
				if err := walk(filepath.Join(dir, entry.Name()), level+1); err != nil {
					return err
				}
			}
			return nil
		}

		return walk(root, 0)
	})
}

var _ vos.ProcessFunc = Tree

func init() {
	mustAddCmd("tree", Tree)
}
