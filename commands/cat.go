package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/josephlewis42/debsh/core/vos"
)

// Cat implements the UNIX cat command. With no files it echoes console
// input until end of input.
func Cat(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "cat [OPTION]... [FILE]...",
		Short: "Concatenate FILE(s) to standard output.",
	}

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		w := virtOS.Stdout()

		if len(files) == 0 {
			return readConsoleLines(ctx, virtOS, func(line string) {
				fmt.Fprintln(w, line)
			})
		}

		for _, file := range files {
			content, err := readFile(virtOS, file)
			if err != nil {
				PrintError(virtOS, "cat: %s: %s", file, describeErr(err))
				continue
			}

			w.Write(content)
			if len(content) > 0 && content[len(content)-1] != '\n' {
				fmt.Fprintln(w)
			}
		}

		return nil
	})
}

// readConsoleLines passes each console line to fn until end of input.
func readConsoleLines(ctx context.Context, virtOS vos.VOS, fn func(line string)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := virtOS.Console().ReadLine("")
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		fn(line)
	}
}

var _ vos.ProcessFunc = Cat

func init() {
	mustAddCmd("cat", Cat)
}
