package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

const statTimeLayout = "2006-01-02 15:04:05.000000000 -0700"

// Stat displays file metadata.
func Stat(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "stat FILE...",
		Short: "Display file or file system status.",
	}

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			PrintError(virtOS, "stat: missing file operand")
			return nil
		}

		w := virtOS.Stdout()
		for _, file := range files {
			info, err := virtOS.Stat(file)
			if err != nil {
				PrintError(virtOS, "stat: cannot stat '%s': %s", file, describeErr(err))
				continue
			}

			kind := "regular file"
			switch {
			case info.IsDir():
				kind = "directory"
			case info.Size() == 0:
				kind = "regular empty file"
			}

			fmt.Fprintf(w, "  File: %s\n", file)
			fmt.Fprintf(w, "  Size: %d\tBlocks: %d\tIO Block: 4096\t%s\n", info.Size(), (info.Size()+511)/512, kind)
			fmt.Fprintf(w, "Access: (%04o/%s)\n", info.Mode().Perm(), info.Mode())
			fmt.Fprintf(w, "Modify: %s\n", info.ModTime().Format(statTimeLayout))
		}

		return nil
	})
}

// fileTypes maps extensions to the description printed by file.
var fileTypes = map[string]string{
	".txt": "ASCII text",
	".log": "ASCII text",
	".md":  "ASCII text",

	".py": "source code",
	".sh": "source code",
	".c":  "source code",
	".h":  "source code",
	".js": "source code",
	".go": "source code",

	".jpg":  "image data",
	".jpeg": "image data",
	".png":  "image data",
	".gif":  "image data",

	".pdf":  "document",
	".doc":  "document",
	".docx": "document",
}

// File guesses the type of each file from its extension.
func File(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "file FILE...",
		Short: "Determine file type.",
	}

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			PrintError(virtOS, "file: missing file operand")
			return nil
		}

		w := virtOS.Stdout()
		for _, file := range files {
			fmt.Fprintf(w, "%s: %s\n", file, describeFile(virtOS, file))
		}
		return nil
	})
}

func describeFile(virtOS vos.VOS, name string) string {
	info, err := virtOS.Stat(name)
	switch {
	case err != nil:
		return fmt.Sprintf("cannot open '%s' (%s)", name, describeErr(err))
	case info.IsDir():
		return "directory"
	case !info.Mode().IsRegular():
		return "unknown type"
	}

	if kind, ok := fileTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return kind
	}
	return "regular file"
}

var _ vos.ProcessFunc = Stat
var _ vos.ProcessFunc = File

func init() {
	mustAddCmd("stat", Stat)
	mustAddCmd("file", File)
}
