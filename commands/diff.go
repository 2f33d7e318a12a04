package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

// Diff compares two files line by line. Lines are paired by position, so
// an insertion shows up as a run of changes.
func Diff(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "diff FILE1 FILE2",
		Short: "Compare files line by line.",
	}

	return cmd.RunE(virtOS, func() error {
		args := cmd.Flags().Args()
		if len(args) != 2 {
			PrintError(virtOS, "diff: need exactly two files to compare")
			return nil
		}

		var contents [2][]string
		for i, file := range args {
			content, err := readFile(virtOS, file)
			if err != nil {
				PrintError(virtOS, "diff: %s: %s", file, describeErr(err))
				return nil
			}
			contents[i] = splitLines(string(content))
		}

		for _, line := range diffLines(contents[0], contents[1]) {
			fmt.Fprintln(virtOS.Stdout(), line)
		}
		return nil
	})
}

// diffLines produces positional diff output in the normal diff notation.
func diffLines(left, right []string) []string {
	var out []string
	common := min(len(left), len(right))

	for i := 0; i < common; i++ {
		if left[i] == right[i] {
			continue
		}
		out = append(out,
			fmt.Sprintf("%dc%d", i+1, i+1),
			"< "+strings.TrimSpace(left[i]),
			"> "+strings.TrimSpace(right[i]))
	}

	for i := common; i < len(left); i++ {
		out = append(out, fmt.Sprintf("%dd%d", i+1, i), "< "+strings.TrimSpace(left[i]))
	}
	for i := common; i < len(right); i++ {
		out = append(out, fmt.Sprintf("%da%d", i, i+1), "> "+strings.TrimSpace(right[i]))
	}

	return out
}

var _ vos.ProcessFunc = Diff

func init() {
	mustAddCmd("diff", Diff)
}
