package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/josephlewis42/debsh/commands"
	"github.com/josephlewis42/debsh/core/logger"
	"github.com/josephlewis42/debsh/core/ttylog"
	"github.com/josephlewis42/debsh/core/vos"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// shellEnv is a shell attached to the process terminal.
type shellEnv struct {
	Shell *commands.Shell

	recording *ttylog.Recorder
	closers   []io.Closer
}

// newShellEnv wires configuration, the event log and the process streams
// into a shell. Line editing is only used when interactive is set and both
// ends are terminals.
func newShellEnv(interactive bool) (*shellEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	env := &shellEnv{}
	ok := false
	defer func() {
		if !ok {
			env.Close()
		}
	}()

	appLog, err := cfg.OpenAppLog()
	if err != nil {
		return nil, fmt.Errorf("opening app log: %w", err)
	}
	env.closers = append(env.closers, appLog)
	recorder := logger.NewJSONLinesRecorder(appLog, cfg.Log.Level).NewSession()

	pty := vos.DetectPTY(os.Stdin, os.Stdout)
	var streams vos.VIO = vos.NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr)

	if path := viper.GetString(flagRecord); path != "" {
		cast, err := afero.NewOsFs().Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating recording: %w", err)
		}
		env.closers = append(env.closers, cast)
		env.recording = ttylog.NewRecorder(streams, nil, ttylog.NewAsciicastLogSink(cast, pty.Width, pty.Height, pty.Term))
		streams = env.recording
	}

	var console vos.Console
	if interactive && pty.IsPTY {
		rl, err := vos.NewReadlineConsole(os.Stdin, streams.Stdout(), streams.Stderr(), pty)
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		env.closers = append(env.closers, rl)
		console = rl
	} else {
		console = vos.NewLineConsole(streams.Stdin(), streams.Stdout())
	}

	session, err := vos.NewLocalSession(vos.SessionOptions{
		IO:      streams,
		Console: console,
		PTY:     pty,
		Host:    vos.NewSystemHost(),
		Config:  cfg,
		Color:   cfg.ColorEnabled(pty.IsPTY),
	})
	if err != nil {
		return nil, err
	}

	env.Shell = commands.NewShell(session, recorder)
	ok = true
	return env, nil
}

// RecordingErr reports the first failure writing the session recording.
func (env *shellEnv) RecordingErr() error {
	if env.recording == nil {
		return nil
	}
	if err := env.recording.Err(); err != nil {
		return fmt.Errorf("recording session: %w", err)
	}
	return nil
}

func (env *shellEnv) Close() error {
	var firstErr error
	for i := len(env.closers) - 1; i >= 0; i-- {
		if err := env.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	env.closers = nil
	return firstErr
}
