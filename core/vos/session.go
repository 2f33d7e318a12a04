package vos

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"
	"strings"
	"syscall"
	"time"

	"github.com/josephlewis42/debsh/core/config"
	"github.com/spf13/afero"
)

const (
	EnvHome   = "HOME"
	EnvPWD    = "PWD"
	EnvOldPWD = "OLDPWD"
	EnvUser   = "USER"
	EnvShell  = "SHELL"
)

// SessionOptions configures a Session, zero fields get usable defaults.
type SessionOptions struct {
	Fs       VFS
	Dir      string
	Home     string
	User     string
	Hostname string
	Environ  []string
	IO       VIO
	Console  Console
	Host     Host
	PTY      PTY
	Config   *config.Configuration
	Clock    func() time.Time
	Color    bool
}

// Session is the state shared by every command run in one shell: the
// filesystem, the working directory and who the user is.
type Session struct {
	*MapEnv

	fs       VFS
	dir      string
	home     string
	user     string
	hostname string
	io       VIO
	console  Console
	sysHost  Host
	pty      PTY
	cfg      *config.Configuration
	clock    func() time.Time
	color    bool
}

func NewSession(opts SessionOptions) *Session {
	s := &Session{
		MapEnv:   NewMapEnvFromEnvList(opts.Environ),
		fs:       opts.Fs,
		dir:      opts.Dir,
		home:     opts.Home,
		user:     opts.User,
		hostname: opts.Hostname,
		io:       opts.IO,
		console:  opts.Console,
		sysHost:  opts.Host,
		pty:      opts.PTY,
		cfg:      opts.Config,
		clock:    opts.Clock,
		color:    opts.Color,
	}

	if s.fs == nil {
		s.fs = afero.NewMemMapFs()
	}
	if s.dir == "" {
		s.dir = string(os.PathSeparator)
	}
	if s.io == nil {
		s.io = NewNullIO()
	}
	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.console == nil {
		s.console = NewLineConsole(s.io.Stdin(), s.io.Stdout())
	}
	if s.sysHost == nil {
		s.sysHost = NewSystemHost()
	}

	s.Setenv(EnvPWD, s.dir)
	if s.home != "" {
		s.Setenv(EnvHome, s.home)
	}
	if s.user != "" {
		s.Setenv(EnvUser, s.user)
	}

	return s
}

// NewLocalSession creates a session on the real filesystem of the machine,
// filling unset options from the running process.
func NewLocalSession(opts SessionOptions) (*Session, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	if opts.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("finding working directory: %w", err)
		}
		opts.Dir = wd
	}

	if opts.Home == "" {
		// A missing home directory only disables ~ abbreviation.
		opts.Home, _ = os.UserHomeDir()
	}

	if opts.User == "" {
		opts.User = currentUsername()
	}

	if opts.Hostname == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "localhost"
		}
		opts.Hostname = host
	}

	if opts.Environ == nil {
		opts.Environ = os.Environ()
	}

	return NewSession(opts), nil
}

func currentUsername() string {
	if u, err := user.Current(); err == nil {
		// Windows reports DOMAIN\user.
		name := u.Username
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		return name
	}

	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}
	return "user"
}

// Getwd returns the absolute working directory.
func (s *Session) Getwd() string {
	return s.dir
}

// Chdir changes the working directory, leaving it untouched on failure.
func (s *Session) Chdir(dir string) error {
	target := ResolvePath(s.dir, dir)

	stat, err := s.fs.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	case err != nil:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return &fs.PathError{Op: "chdir", Path: dir, Err: err}
	case !stat.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}

	s.Setenv(EnvOldPWD, s.dir)
	s.Setenv(EnvPWD, target)
	s.dir = target
	return nil
}

func (s *Session) Username() string {
	return s.user
}

func (s *Session) Hostname() string {
	return s.hostname
}

func (s *Session) HomeDir() string {
	return s.home
}

func (s *Session) Stdin() io.ReadCloser {
	return s.io.Stdin()
}

func (s *Session) Stdout() io.WriteCloser {
	return s.io.Stdout()
}

func (s *Session) Stderr() io.WriteCloser {
	return s.io.Stderr()
}

// SetIO replaces the standard streams of the session.
func (s *Session) SetIO(streams VIO) {
	s.io = streams
}

func (s *Session) GetPTY() PTY {
	return s.pty
}

func (s *Session) Console() Console {
	return s.console
}

func (s *Session) Host() Host {
	return s.sysHost
}

func (s *Session) Now() time.Time {
	return s.clock()
}

func (s *Session) ColorEnabled() bool {
	return s.color
}

func (s *Session) Config() *config.Configuration {
	return s.cfg
}

// Fs returns the session filesystem, paths must be absolute.
func (s *Session) Fs() VFS {
	return s.fs
}

// Proc creates the view a single command invocation sees.
func (s *Session) Proc(argv []string) *Proc {
	return &Proc{
		Session: s,
		VFS:     NewWorkdirFs(s.fs, s.Getwd),
		args:    argv,
	}
}

// Proc is a command invocation, it lives until the command returns.
type Proc struct {
	*Session
	VFS

	args []string
}

var _ VOS = (*Proc)(nil)

// Args implements VOS.Args.
func (p *Proc) Args() []string {
	return p.args
}
