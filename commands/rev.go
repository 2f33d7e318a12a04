package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

// Rev reverses the characters of every line.
func Rev(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "rev [FILE]...",
		Short: "Reverse lines characterwise.",
	}

	return cmd.RunE(virtOS, func() error {
		w := virtOS.Stdout()
		files := cmd.Flags().Args()

		if len(files) == 0 {
			return readConsoleLines(ctx, virtOS, func(line string) {
				fmt.Fprintln(w, reverse(line))
			})
		}

		for _, file := range files {
			content, err := readFile(virtOS, file)
			if err != nil {
				PrintError(virtOS, "rev: %s: %s", file, describeErr(err))
				continue
			}

			for _, line := range splitLines(string(content)) {
				fmt.Fprintln(w, reverse(strings.TrimSpace(line)))
			}
		}

		return nil
	})
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

var _ vos.ProcessFunc = Rev

func init() {
	mustAddCmd("rev", Rev)
}
