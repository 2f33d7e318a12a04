package commands

import (
	"strings"
)

// PromptSource supplies the session values a prompt shows.
type PromptSource interface {
	Username() string
	Hostname() string
	Getwd() string
	HomeDir() string
}

// RenderPrompt expands a bash style prompt template. It understands \u for
// the user, \h for the host, \w for the working directory with the home
// directory shortened to ~ and \$ for a literal $.
func RenderPrompt(template string, src PromptSource, colorize bool) string {
	user := strings.ToLower(src.Username())
	host := strings.ToLower(src.Hostname())
	dir := AbbreviateHome(src.Getwd(), src.HomeDir())

	paint := func(c interface{ Sprint(...interface{}) string }, s string) string {
		if colorize {
			return c.Sprint(s)
		}
		return s
	}

	replacer := strings.NewReplacer(
		`\u@\h`, paint(ColorGreen, user+"@"+host),
		`\u`, paint(ColorGreen, user),
		`\h`, paint(ColorGreen, host),
		`\w`, paint(ColorCyan, dir),
		`\$`, "$",
	)
	return replacer.Replace(template)
}

// AbbreviateHome replaces a leading home directory in dir with ~.
func AbbreviateHome(dir, home string) string {
	home = strings.TrimRight(home, `/\`)
	switch {
	case home == "":
		return dir
	case dir == home:
		return "~"
	case strings.HasPrefix(dir, home) && strings.ContainsRune(`/\`, rune(dir[len(home)])):
		return "~" + dir[len(home):]
	default:
		return dir
	}
}
