package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/josephlewis42/debsh/core/vos"
)

// Help lists the builtin commands.
func Help(ctx context.Context, virtOS vos.VOS) error {
	var md strings.Builder
	md.WriteString("# Builtin commands\n\n")
	md.WriteString("Commands are split on whitespace, quoting and pipes are not supported.\n\n")
	for _, name := range AllCommands.Names() {
		fmt.Fprintf(&md, "- `%s`\n", name)
	}

	style := "notty"
	if virtOS.ColorEnabled() {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(virtOS.GetPTY().Width, 40)),
	)
	if err != nil {
		return err
	}

	out, err := renderer.Render(md.String())
	if err != nil {
		return err
	}

	fmt.Fprint(virtOS.Stdout(), out)
	return nil
}

var _ vos.ProcessFunc = Help

func init() {
	mustAddCmd("help", Help)
}
