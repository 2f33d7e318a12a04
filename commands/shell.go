package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"

	"github.com/josephlewis42/debsh/core/logger"
	"github.com/josephlewis42/debsh/core/vos"
)

const resetColor = "\033[0m"

// Reasons a shell session ends, as recorded in the event log.
const (
	EndReasonEOF       = "eof"
	EndReasonInterrupt = "interrupt"
	EndReasonCanceled  = "canceled"
	EndReasonError     = "error"
)

// Shell is the interactive read, parse and dispatch loop.
type Shell struct {
	Session  *vos.Session
	Commands Registry
	Recorder *logger.Recorder

	interrupts chan os.Signal
}

func NewShell(session *vos.Session, recorder *logger.Recorder) *Shell {
	if recorder == nil {
		recorder = logger.Discard()
	}

	return &Shell{
		Session:  session,
		Commands: AllCommands,
		Recorder: recorder,
	}
}

// Run prompts for and executes commands until the input ends or the user
// interrupts an empty prompt. Handler failures never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	defer s.listen()()

	s.Recorder.SessionStart(s.Session.Username(), s.Session.Hostname(), s.Session.Getwd())

	for {
		if err := ctx.Err(); err != nil {
			s.end(EndReasonCanceled)
			return err
		}

		prompt := RenderPrompt(s.Session.Config().Prompt, s.Session, s.Session.ColorEnabled())
		stop := s.watchInterrupts(nil)
		line, err := s.Session.Console().ReadLine(prompt)
		stop()
		switch {
		case errors.Is(err, io.EOF):
			s.end(EndReasonEOF)
			return nil

		case errors.Is(err, vos.ErrInterrupted):
			s.end(EndReasonInterrupt)
			return nil

		case err != nil:
			s.end(EndReasonError)
			return fmt.Errorf("reading input: %w", err)
		}

		s.Execute(ctx, line)
	}
}

func (s *Shell) end(reason string) {
	w := s.Session.Stdout()
	fmt.Fprintln(w)
	if s.Session.ColorEnabled() {
		io.WriteString(w, resetColor)
	}
	s.Recorder.SessionEnd(reason)
}

// Execute runs a single line of input. Errors and panics from the handler
// are reported as diagnostics.
func (s *Shell) Execute(ctx context.Context, line string) {
	defer s.listen()()

	inv := ParseLine(line)
	if inv.Empty() {
		return
	}

	argv := inv.Argv()
	proc := s.Session.Proc(argv)

	handler, ok := s.Commands.Lookup(inv.Name)
	if !ok {
		s.Recorder.UnknownCommand(argv)
		PrintError(proc, "%s: command not found", inv.Name)
		return
	}

	s.Recorder.RunCommand(argv)

	cmdCtx, cancel := context.WithCancel(logger.NewContext(ctx, s.Recorder))
	defer cancel()
	stop := s.watchInterrupts(cancel)
	defer stop()

	err := s.invoke(cmdCtx, handler, proc)
	switch {
	case err == nil:
	case errors.Is(err, vos.ErrInterrupted), errors.Is(err, context.Canceled):
		fmt.Fprintln(proc.Stdout())
	default:
		s.Recorder.HandlerFailure(argv, err)
		PrintError(proc, "%s: %s", inv.Name, formatErr(err))
	}
}

func (s *Shell) invoke(ctx context.Context, handler HandlerFunc, proc *vos.Proc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.Recorder.Panic(proc.Args(), r, debug.Stack())
			err = fmt.Errorf("%v", r)
		}
	}()

	return handler(ctx, proc)
}

// listen routes SIGINT to the shell unless a channel is already installed.
func (s *Shell) listen() (stop func()) {
	if s.interrupts != nil {
		return func() {}
	}

	s.interrupts = make(chan os.Signal, 1)
	signal.Notify(s.interrupts, os.Interrupt)
	return func() {
		signal.Stop(s.interrupts)
		s.interrupts = nil
	}
}

// watchInterrupts cancels the running command, if any, and breaks blocked
// console reads when an interrupt arrives. The returned function stops
// watching.
func (s *Shell) watchInterrupts(cancel context.CancelFunc) (stop func()) {
	if s.interrupts == nil {
		return func() {}
	}

	console, _ := s.Session.Console().(vos.Interruptible)

	// Interrupts from before the watch started belong to nobody.
drain:
	for {
		select {
		case <-s.interrupts:
		default:
			break drain
		}
	}
	if console != nil {
		console.ClearInterrupt()
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-s.interrupts:
			if cancel != nil {
				cancel()
			}
			if console != nil {
				console.Interrupt()
			}
		case <-done:
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}
