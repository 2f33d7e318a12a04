package vos

import (
	"context"
	"io"
	"time"

	"github.com/josephlewis42/debsh/core/config"
)

// ProcessFunc is a builtin command that can be run against a VOS.
type ProcessFunc func(ctx context.Context, virtOS VOS) error

type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// VIO holds the standard streams of a command.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VProc holds the process level view of the session.
type VProc interface {
	// Args holds command line arguments, including the command as Args[0].
	Args() []string
	// Getwd returns the absolute working directory of the session.
	Getwd() string
	// Chdir changes the session working directory. Only cd should call it.
	Chdir(dir string) error
	Username() string
	Hostname() string
	HomeDir() string
}

// VOS provides a virtual OS interface scoped to a single command invocation.
// Relative paths given to the filesystem methods resolve against the
// session's working directory at the time of the call.
type VOS interface {
	VEnv
	VIO
	VProc
	VFS

	GetPTY() PTY
	// Console reads lines of interactive input.
	Console() Console
	// Host reports on the machine the shell runs on.
	Host() Host
	// Now returns the current time.
	Now() time.Time
	// ColorEnabled reports whether the session colors its output.
	ColorEnabled() bool
	Config() *config.Configuration
}
