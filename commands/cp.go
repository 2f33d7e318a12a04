package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
)

// Cp copies files and, with -r, directory trees.
func Cp(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "cp [OPTION]... SOURCE... DEST",
		Short: "Copy SOURCE to DEST, or multiple SOURCE(s) to DIRECTORY.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "copy directories recursively")
	recursiveAlias := cmd.Flags().Bool('R', "same as -r")
	force := cmd.Flags().BoolLong("force", 'f', "overwrite existing files without asking")

	return cmd.RunE(virtOS, func() error {
		operands := cmd.Flags().Args()
		if len(operands) < 2 {
			PrintError(virtOS, "cp: missing file operand")
			fmt.Fprintln(virtOS.Stdout(), "Try 'cp --help' for more information.")
			return nil
		}

		sources, dest := operands[:len(operands)-1], operands[len(operands)-1]
		destIsDir := isDir(virtOS, dest)
		if len(sources) > 1 && !destIsDir {
			PrintError(virtOS, "cp: target '%s' is not a directory", dest)
			return nil
		}

		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return err
			}

			stat, err := virtOS.Stat(src)
			if err != nil {
				PrintError(virtOS, "cp: cannot stat '%s': %s", src, describeErr(err))
				continue
			}

			target := dest
			if destIsDir {
				target = filepath.Join(dest, filepath.Base(src))
			}

			if stat.IsDir() {
				if !*recursive && !*recursiveAlias {
					PrintError(virtOS, "cp: -r not specified; omitting directory '%s'", src)
					continue
				}
				if within(virtOS, target, src) {
					PrintError(virtOS, "cp: cannot copy a directory, '%s', into itself, '%s'", src, target)
					continue
				}
				if err := copyTree(virtOS, src, target); err != nil {
					PrintError(virtOS, "cp: cannot copy '%s': %s", src, describeErr(err))
				}
				continue
			}

			if !*force && exists(virtOS, target) {
				ok, err := confirmOverwrite(virtOS, "cp", target)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}

			if err := copyFile(virtOS, src, target); err != nil {
				PrintError(virtOS, "cp: cannot copy '%s': %s", src, describeErr(err))
			}
		}

		return nil
	})
}

// confirmOverwrite asks the user whether dest may be replaced. End of input
// counts as a no.
func confirmOverwrite(virtOS vos.VOS, name, dest string) (bool, error) {
	answer, err := virtOS.Console().ReadLine(fmt.Sprintf("%s: overwrite '%s'? (y/n) ", name, dest))
	switch {
	case errors.Is(err, io.EOF):
		return false, nil
	case err != nil:
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func exists(virtOS vos.VOS, name string) bool {
	_, err := virtOS.Stat(name)
	return err == nil
}

func isDir(virtOS vos.VOS, name string) bool {
	stat, err := virtOS.Stat(name)
	return err == nil && stat.IsDir()
}

// within reports whether child is dir or lies below it.
func within(virtOS vos.VOS, child, dir string) bool {
	cwd := virtOS.Getwd()
	rel, err := filepath.Rel(vos.ResolvePath(cwd, dir), vos.ResolvePath(cwd, child))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// copyFile copies a regular file keeping its mode and modification time.
func copyFile(virtOS vos.VOS, src, dest string) error {
	stat, err := virtOS.Stat(src)
	if err != nil {
		return err
	}

	if parent, err := virtOS.Stat(filepath.Dir(dest)); err != nil {
		return err
	} else if !parent.IsDir() {
		return &fs.PathError{Op: "open", Path: dest, Err: fs.ErrNotExist}
	}

	in, err := virtOS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := virtOS.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, stat.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return virtOS.Chtimes(dest, stat.ModTime(), stat.ModTime())
}

// copyTree copies the directory src to dest, merging into dest if it
// already exists.
func copyTree(virtOS vos.VOS, src, dest string) error {
	return afero.Walk(virtOS, src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			return virtOS.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(virtOS, path, target)
	})
}

var _ vos.ProcessFunc = Cp

func init() {
	mustAddCmd("cp", Cp)
}
