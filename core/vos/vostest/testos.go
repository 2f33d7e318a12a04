package vostest

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/josephlewis42/debsh/core/config"
	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
)

const (
	// DefaultUser is the user of deterministic sessions.
	DefaultUser = "user"
	// DefaultHostname is the hostname of deterministic sessions.
	DefaultHostname = "debian"
	// DefaultHome is the home and starting directory of deterministic sessions.
	DefaultHome = "/home/user"
)

// ReferenceTime is Go's reference timestamp, each field holds a different
// value.
var ReferenceTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// NewDeterministicSession creates a session with an in-memory filesystem, a
// fixed clock and host, and color turned off.
func NewDeterministicSession(console vos.Console) *vos.Session {
	memFs := afero.NewMemMapFs()
	memFs.MkdirAll(DefaultHome, 0755)
	memFs.MkdirAll("/tmp", 0777)

	return vos.NewSession(vos.SessionOptions{
		Fs:       memFs,
		Dir:      DefaultHome,
		Home:     DefaultHome,
		User:     DefaultUser,
		Hostname: DefaultHostname,
		Environ: []string{
			"HOME=" + DefaultHome,
			"USER=" + DefaultUser,
			"SHELL=/bin/bash",
			"PATH=/usr/local/bin:/usr/bin:/bin",
		},
		Console: console,
		Host:    NewFakeHost(),
		PTY:     vos.PTY{Width: 80, Height: 24, Term: "xterm", IsPTY: true},
		Config:  config.Default(),
		Clock: func() time.Time {
			return ReferenceTime
		},
	})
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// If Dir is non-empty, the session changes into the directory before
	// running the process.
	Dir string
	// Env holds extra variables in the form returned by Environ.
	Env []string

	// Stdin holds the lines the console will return, in order.
	Stdin []string
	Stdout io.Writer
	Stderr io.Writer

	// Session the command runs in, usable for setup before Run.
	Session *vos.Session
	// VOS is a view of the session for setup, relative paths resolve
	// against the home directory.
	VOS vos.VOS
	// Console records prompts shown by the process.
	Console *ScriptedConsole

	// Context the process is run with, defaults to context.Background.
	Context context.Context

	// Err holds the error the process returned.
	Err error

	Setup func(vos.VOS) error
}

func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	console := &ScriptedConsole{}
	session := NewDeterministicSession(console)
	argv := append([]string{name}, arg...)

	return &Cmd{
		Process: process,
		Argv:    argv,
		Session: session,
		VOS:     session.Proc(argv),
		Console: console,
	}
}

// CombinedOutput runs the command and returns stdout and stderr
// interleaved along with the error the process returned.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	return buf.Bytes(), err
}

// Output runs the command and returns stdout.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	err := c.Run()
	return buf.Bytes(), err
}

// Run runs the command and waits for it to complete. The returned error is
// the one returned by the process unless setup fails.
func (c *Cmd) Run() error {
	c.Console.Lines = append(c.Console.Lines, c.Stdin...)
	c.Console.Out = c.Stdout
	if c.Console.Out == nil {
		c.Console.Out = io.Discard
	}
	c.Session.SetIO(vos.NewVIOAdapter(nil, c.Stdout, c.Stderr))

	if c.Dir != "" {
		if err := c.Session.Chdir(c.Dir); err != nil {
			return err
		}
	}
	vos.CopyEnv(c.Session, c.Env)

	proc := c.Session.Proc(c.Argv)
	if c.Setup != nil {
		if err := c.Setup(proc); err != nil {
			return err
		}
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	c.Err = c.Process(ctx, proc)
	return c.Err
}
