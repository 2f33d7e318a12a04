package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// exitNotFound is the status a POSIX shell gives commands it can't find.
const exitNotFound = 127

// Time runs its arguments as a shell command line and reports how long it
// took. Only builtins can be run, nothing outside the shell is executed.
func Time(ctx context.Context, virtOS vos.VOS) error {
	args := argsOf(virtOS)
	if len(args) == 0 {
		return nil
	}

	start := virtOS.Now()

	file, err := syntax.NewParser().Parse(strings.NewReader(strings.Join(args, " ")), "")
	if err != nil {
		PrintError(virtOS, "time: %s", err)
		return nil
	}

	runner, err := newScriptRunner(virtOS)
	if err != nil {
		return err
	}

	if err := runner.Run(ctx, file); err != nil {
		if _, ok := interp.IsExitStatus(err); !ok {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			PrintError(virtOS, "time: %s", err)
		}
	}

	elapsed := virtOS.Now().Sub(start)
	fmt.Fprintf(virtOS.Stdout(), "\nreal\t%.3fs\n", elapsed.Seconds())
	return nil
}

// newScriptRunner creates an interpreter that sees the session filesystem,
// environment and working directory, dispatching commands to the builtins.
func newScriptRunner(virtOS vos.VOS) (*interp.Runner, error) {
	return interp.New(
		interp.Env(expand.ListEnviron(virtOS.Environ()...)),
		func(r *interp.Runner) error {
			// interp.Dir checks the host filesystem.
			r.Dir = virtOS.Getwd()
			return nil
		},
		interp.StdIO(nil, virtOS.Stdout(), virtOS.Stderr()),
		interp.OpenHandler(func(ctx context.Context, path string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
			return virtOS.OpenFile(path, flag, perm)
		}),
		interp.StatHandler(func(ctx context.Context, name string, followSymlinks bool) (fs.FileInfo, error) {
			return virtOS.Stat(name)
		}),
		interp.ReadDirHandler2(func(ctx context.Context, path string) ([]fs.DirEntry, error) {
			infos, err := afero.ReadDir(virtOS, path)
			if err != nil {
				return nil, err
			}
			entries := make([]fs.DirEntry, len(infos))
			for i, info := range infos {
				entries[i] = fs.FileInfoToDirEntry(info)
			}
			return entries, nil
		}),
		interp.ExecHandlers(func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
			return func(ctx context.Context, args []string) error {
				hc := interp.HandlerCtx(ctx)
				proc := &scriptProc{
					VOS:  virtOS,
					args: args,
					io:   vos.NewVIOAdapter(nil, hc.Stdout, hc.Stderr),
				}

				cmd, ok := AllCommands.Lookup(args[0])
				if !ok {
					PrintError(proc, "%s: command not found", args[0])
					return interp.NewExitStatus(exitNotFound)
				}

				if err := cmd(ctx, proc); err != nil {
					PrintError(proc, "%s: %s", args[0], formatErr(err))
					return interp.NewExitStatus(1)
				}
				return nil
			}
		}),
	)
}

// scriptProc is a command invocation made by the interpreter, with its own
// arguments and output streams.
type scriptProc struct {
	vos.VOS

	args []string
	io   vos.VIO
}

func (p *scriptProc) Args() []string {
	return p.args
}

func (p *scriptProc) Stdout() io.WriteCloser {
	return p.io.Stdout()
}

func (p *scriptProc) Stderr() io.WriteCloser {
	return p.io.Stderr()
}

var _ vos.VOS = (*scriptProc)(nil)
var _ vos.ProcessFunc = Time

func init() {
	mustAddCmd("time", Time)
}
