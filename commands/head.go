package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/josephlewis42/debsh/core/vos"
)

const defaultLineCount = 10

// Head prints the first lines of each file.
func Head(ctx context.Context, virtOS vos.VOS) error {
	return runLineWindow(virtOS, "head", "Print the first 10 lines of each FILE to standard output.",
		func(lines []string, n int) []string {
			return lines[:min(n, len(lines))]
		})
}

// Tail prints the last lines of each file.
func Tail(ctx context.Context, virtOS vos.VOS) error {
	return runLineWindow(virtOS, "tail", "Print the last 10 lines of each FILE to standard output.",
		func(lines []string, n int) []string {
			return lines[max(0, len(lines)-n):]
		})
}

// runLineWindow is the shared body of head and tail, window picks the lines
// to show out of a whole file.
func runLineWindow(virtOS vos.VOS, name, short string, window func(lines []string, n int) []string) error {
	cmd := &SimpleCommand{
		Use:   name + " [OPTION]... FILE...",
		Short: short,
	}

	count := cmd.Flags().StringLong("lines", 'n', strconv.Itoa(defaultLineCount), "print NUM lines instead of 10", "NUM")

	return cmd.RunE(virtOS, func() error {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			PrintError(virtOS, "%s: missing file operand", name)
			return nil
		}

		n, err := strconv.Atoi(*count)
		if err != nil || n < 0 {
			PrintError(virtOS, "%s: invalid number of lines", name)
			return nil
		}

		w := virtOS.Stdout()
		for _, file := range files {
			stat, err := virtOS.Stat(file)
			switch {
			case err != nil:
				PrintError(virtOS, "%s: cannot open '%s' for reading: %s", name, file, describeErr(err))
				continue
			case stat.IsDir():
				PrintError(virtOS, "%s: error reading '%s': Is a directory", name, file)
				continue
			}

			content, err := readFile(virtOS, file)
			if err != nil {
				PrintError(virtOS, "%s: error reading '%s': %s", name, file, describeErr(err))
				continue
			}

			fmt.Fprintf(w, "==> %s <==\n", file)
			for _, line := range window(splitLines(string(content)), n) {
				fmt.Fprintln(w, line)
			}
			fmt.Fprintln(w)
		}

		return nil
	})
}

var _ vos.ProcessFunc = Head
var _ vos.ProcessFunc = Tail

func init() {
	mustAddCmd("head", Head)
	mustAddCmd("tail", Tail)
}
