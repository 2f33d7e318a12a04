package vos

import (
	"os"

	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// DetectPTY describes the terminal attached to the process. Sizes fall back
// to 80x24 when out is not a terminal.
func DetectPTY(in, out *os.File) PTY {
	pty := PTY{
		Width:  defaultWidth,
		Height: defaultHeight,
		Term:   os.Getenv("TERM"),
		IsPTY:  term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())),
	}

	if width, height, err := term.GetSize(int(out.Fd())); err == nil && width > 0 {
		pty.Width, pty.Height = width, height
	}

	return pty
}
