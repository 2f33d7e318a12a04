package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

// Grep prints lines containing PATTERN as a plain substring. Lines read
// from files are prefixed with the file name, with no files it filters
// console input.
func Grep(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "grep [-ivn] PATTERN [FILE]...",
		Short: "Search files for lines containing PATTERN.",
	}

	invert := cmd.Flags().Bool('v', "select non-matching lines")
	ignoreCase := cmd.Flags().Bool('i', "ignore case distinctions")
	showLineNumbers := cmd.Flags().Bool('n', "prefix each line with its line number")

	return cmd.RunE(virtOS, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			PrintError(virtOS, "grep: search pattern required")
			return nil
		}

		pattern := args[0]
		if *ignoreCase {
			pattern = strings.ToLower(pattern)
		}

		matches := func(line string) bool {
			if *ignoreCase {
				line = strings.ToLower(line)
			}
			return strings.Contains(line, pattern) != *invert
		}

		w := virtOS.Stdout()
		write := func(prefix string, lineNo int, line string) {
			if *showLineNumbers {
				prefix += fmt.Sprintf("%d:", lineNo)
			}
			fmt.Fprintf(w, "%s%s\n", prefix, line)
		}

		files := args[1:]
		if len(files) == 0 {
			lineNo := 0
			return readConsoleLines(ctx, virtOS, func(line string) {
				lineNo++
				if matches(line) {
					write("", lineNo, line)
				}
			})
		}

		for _, file := range files {
			content, err := readFile(virtOS, file)
			if err != nil {
				PrintError(virtOS, "grep: %s: %s", file, describeErr(err))
				continue
			}

			for i, line := range splitLines(string(content)) {
				if matches(line) {
					write(file+":", i+1, line)
				}
			}
		}

		return nil
	})
}

var _ vos.ProcessFunc = Grep

func init() {
	mustAddCmd("grep", Grep)
}
