package commands

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7]{1,3}`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F]{1,2}`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
		`\\`, `\`,
		`\b`, "\b",
		`\a`, "\a",
		`\f`, "\f",
		`\v`, "\v",
	)
)

// unescape expands the backslash escapes understood by echo -e.
func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseUint(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
}

// Echo writes its arguments separated by single spaces.
func Echo(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "echo [-e] [ARG]...",
		Short: "Display a line of text.",
	}

	opt := cmd.Flags()
	escaped := opt.Bool('e', "interpret backslash escapes")
	noNewline := opt.Bool('n', "do not output the trailing newline")

	return cmd.RunE(virtOS, func() error {
		text := strings.Join(opt.Args(), " ")
		if *escaped {
			text = unescape(text)
		}

		fmt.Fprint(virtOS.Stdout(), text)
		if !*noNewline {
			fmt.Fprintln(virtOS.Stdout())
		}
		return nil
	})
}

var _ vos.ProcessFunc = Echo

func init() {
	mustAddCmd("echo", Echo)
}
