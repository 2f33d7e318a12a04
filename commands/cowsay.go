package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/mattn/go-runewidth"
)

const (
	cowsayWidth   = 40
	cowsayDefault = "Hello World"
	cow           = `           \   ^__^
            \  (oo)\_______
               (__)\       )\/\
                   ||----w |
                   ||     ||`
)

// Cowsay draws a cow saying the arguments inside a speech bubble.
func Cowsay(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "cowsay [MESSAGE]...",
		Short: "Generate an ASCII picture of a cow saying something.",
	}

	return cmd.RunE(virtOS, func() error {
		text := strings.Join(cmd.Flags().Args(), " ")
		if strings.TrimSpace(text) == "" {
			text = cowsayDefault
		}

		fmt.Fprint(virtOS.Stdout(), speechBubble(wrapText(text, cowsayWidth)))
		fmt.Fprintln(virtOS.Stdout(), cow)
		return nil
	})
}

func speechBubble(lines []string) string {
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, " %s\n", strings.Repeat("_", width+2))
	for i, line := range lines {
		left, right := "|", "|"
		switch {
		case len(lines) == 1:
			left, right = "<", ">"
		case i == 0:
			left, right = "/", `\`
		case i == len(lines)-1:
			left, right = `\`, "/"
		}
		fmt.Fprintf(&sb, "%s %s %s\n", left, runewidth.FillRight(line, width), right)
	}
	fmt.Fprintf(&sb, " %s\n", strings.Repeat("-", width+2))
	return sb.String()
}

// wrapText greedily fills lines up to width display columns, splitting
// words that are wider than a whole line.
func wrapText(text string, width int) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		for runewidth.StringWidth(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = word[len(head):]
		}

		switch {
		case word == "":
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

var _ vos.ProcessFunc = Cowsay

func init() {
	mustAddCmd("cowsay", Cowsay)
}
