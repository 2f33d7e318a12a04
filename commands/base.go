package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/josephlewis42/debsh/core/config"
	"github.com/josephlewis42/debsh/core/vos"
	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

// HandlerFunc runs a single builtin, argv is available from virtOS.Args().
type HandlerFunc = vos.ProcessFunc

// Registry maps command names to their handlers.
type Registry map[string]HandlerFunc

// AllCommands holds every builtin, it is filled by init functions and
// never changes afterwards.
var AllCommands = make(Registry)

// mustAddCmd registers a builtin, panicking if the name is already taken.
func mustAddCmd(name string, cmd HandlerFunc) {
	if _, ok := AllCommands[name]; ok {
		panic(fmt.Sprintf("command %q registered twice", name))
	}
	AllCommands[name] = cmd
}

// Lookup finds the handler for a command name.
func (r Registry) Lookup(name string) (HandlerFunc, bool) {
	cmd, ok := r[name]
	return cmd, ok && cmd != nil
}

// Names lists the registered commands in sorted order.
func (r Registry) Names() []string {
	var out []string
	for name := range r {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a sone line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// RunE parses flags and calls the callback if parsing was successful. Bad
// flags are reported with the help text and are not an error.
func (s *SimpleCommand) RunE(virtOS vos.VOS, callback func() error) error {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(virtOS.Args(), nil); err != nil {
		PrintError(virtOS, "%s: %s", virtOS.Args()[0], err)
		s.PrintHelp(virtOS.Stdout())
		return nil
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return nil
	}

	return callback()
}

// forced builds a color that ignores the global NoColor setting, callers
// decide whether to use it.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	ColorBoldBlue  = forced(color.FgBlue, color.Bold)
	ColorBoldGreen = forced(color.FgGreen, color.Bold)
	ColorBoldCyan  = forced(color.FgCyan, color.Bold)
	ColorBoldRed   = forced(color.FgRed, color.Bold)

	ColorGreen  = forced(color.FgGreen)
	ColorCyan   = forced(color.FgCyan)
	ColorRed    = forced(color.FgRed)
	ColorYellow = forced(color.FgYellow)
	ColorBlue   = forced(color.FgBlue)
	ColorWhite  = forced(color.FgWhite)
)

type ColorPrinter struct {
	value  *string
	virtOS vos.VOS
}

// Init sets up the flag and virtual OS to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, virtOS vos.VOS) {
	c.virtOS = virtOS
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{config.ColorAlways, config.ColorAuto, config.ColorNever},
		config.ColorAuto,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	if c.value == nil {
		return c.virtOS.ColorEnabled()
	}

	switch *c.value {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		return c.virtOS.ColorEnabled()
	}
}

func (c *ColorPrinter) Sprintf(color *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return color.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

// sessionColor colors text following the session setting.
func sessionColor(virtOS vos.VOS, c *color.Color, text string) string {
	if virtOS.ColorEnabled() {
		return c.Sprint(text)
	}
	return text
}

// PrintError writes a shell diagnostic to stderr.
func PrintError(virtOS vos.VOS, format string, a ...interface{}) {
	msg := diagnosticPrefix(virtOS.Config()) + fmt.Sprintf(format, a...)
	fmt.Fprintln(virtOS.Stderr(), sessionColor(virtOS, ColorRed, msg))
}

func diagnosticPrefix(cfg *config.Configuration) string {
	if cfg == nil || cfg.DiagnosticPrefix == "" {
		return ""
	}
	return cfg.DiagnosticPrefix + ": "
}

// describeErr gives the Unix wording for common filesystem errors.
func describeErr(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, fs.ErrExist):
		return "File exists"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	case errors.Is(err, syscall.ENOTDIR):
		return "Not a directory"
	case errors.Is(err, syscall.EISDIR):
		return "Is a directory"
	case errors.Is(err, syscall.ENOTEMPTY):
		return "Directory not empty"
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return strings.ToLower(pathErr.Err.Error())
	}
	return err.Error()
}

// formatErr renders an error as "path: reason" when it refers to a path.
func formatErr(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("%s: %s", pathErr.Path, describeErr(err))
	}
	return describeErr(err)
}

// argsOf returns the operands of a command, everything after argv[0].
func argsOf(virtOS vos.VOS) []string {
	if args := virtOS.Args(); len(args) > 1 {
		return args[1:]
	}
	return nil
}

// readFile reads a whole file, directories fail with EISDIR.
func readFile(virtOS vos.VOS, name string) ([]byte, error) {
	stat, err := virtOS.Stat(name)
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: syscall.EISDIR}
	}
	return afero.ReadFile(virtOS, name)
}

// splitLines splits file content into lines without their terminators.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
