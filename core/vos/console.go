package vos

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/abiosoft/readline"
)

// ErrInterrupted is returned when the user interrupts a read with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Console reads interactive input for the shell and its commands.
type Console interface {
	// ReadLine shows prompt and blocks until a full line is read. It returns
	// io.EOF at the end of input and ErrInterrupted on Ctrl-C.
	ReadLine(prompt string) (string, error)
	// Ready reports whether input is waiting to be read, blocking for at
	// most wait.
	Ready(wait time.Duration) (bool, error)
}

// KeyPoller checks for pending input without consuming it.
type KeyPoller interface {
	Ready(wait time.Duration) (bool, error)
}

// ReadlineConsole is a Console on a real terminal.
type ReadlineConsole struct {
	rl     *readline.Instance
	gate   *gatedReader
	poller KeyPoller
}

var _ Console = (*ReadlineConsole)(nil)

func NewReadlineConsole(stdin *os.File, stdout, stderr io.Writer, pty PTY) (*ReadlineConsole, error) {
	// readline reads stdin from a background goroutine. The gate keeps that
	// goroutine away from the terminal between lines so the poller can see
	// keys typed at the pager.
	gate := newGatedReader(stdin)

	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(gate),
		Stdout: stdout,
		Stderr: stderr,
		FuncGetWidth: func() int {
			return pty.Width
		},
		FuncIsTerminal: func() bool {
			return pty.IsPTY
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineConsole{
		rl:     rl,
		gate:   gate,
		poller: NewKeyPoller(stdin),
	}, nil
}

// ReadLine implements Console.ReadLine.
func (c *ReadlineConsole) ReadLine(prompt string) (string, error) {
	c.rl.SetPrompt(prompt)
	c.gate.Open()

	line, err := c.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	default:
		return line, nil
	}
}

// Ready implements Console.Ready.
func (c *ReadlineConsole) Ready(wait time.Duration) (bool, error) {
	return c.poller.Ready(wait)
}

func (c *ReadlineConsole) Close() error {
	c.gate.Open()
	return c.rl.Close()
}

// Interruptible consoles can have a blocked ReadLine broken from another
// goroutine, for input that isn't a terminal in raw mode.
type Interruptible interface {
	// Interrupt makes the current or next ReadLine return ErrInterrupted.
	Interrupt()
	// ClearInterrupt discards an interrupt no read has consumed.
	ClearInterrupt()
}

// LineConsole reads lines from a plain stream, it is used when input is
// not a terminal.
type LineConsole struct {
	r          *bufio.Reader
	w          io.Writer
	interrupts chan struct{}
	results    chan lineResult
	pending    bool
}

type lineResult struct {
	line string
	err  error
}

var _ Console = (*LineConsole)(nil)
var _ Interruptible = (*LineConsole)(nil)

func NewLineConsole(r io.Reader, w io.Writer) *LineConsole {
	return &LineConsole{
		r:          bufio.NewReader(r),
		w:          w,
		interrupts: make(chan struct{}, 1),
		results:    make(chan lineResult, 1),
	}
}

// ReadLine implements Console.ReadLine. An interrupted read keeps waiting
// in the background and its line goes to the next ReadLine.
func (c *LineConsole) ReadLine(prompt string) (string, error) {
	io.WriteString(c.w, prompt)

	if !c.pending {
		c.pending = true
		go func() {
			line, err := c.r.ReadString('\n')
			c.results <- lineResult{line, err}
		}()
	}

	var res lineResult
	select {
	case <-c.interrupts:
		return "", ErrInterrupted
	case res = <-c.results:
		c.pending = false
	}

	line, err := res.line, res.err
	if errors.Is(err, os.ErrClosed) {
		err = io.EOF
	}
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ready implements Console.Ready, only input already buffered counts.
func (c *LineConsole) Ready(time.Duration) (bool, error) {
	if c.pending {
		return len(c.results) > 0, nil
	}
	return c.r.Buffered() > 0, nil
}

// Interrupt implements Interruptible.Interrupt.
func (c *LineConsole) Interrupt() {
	select {
	case c.interrupts <- struct{}{}:
	default:
	}
}

// ClearInterrupt implements Interruptible.ClearInterrupt.
func (c *LineConsole) ClearInterrupt() {
	select {
	case <-c.interrupts:
	default:
	}
}

// gatedReader only reads from the underlying reader while open, and closes
// itself after passing on a line terminator, interrupt or end of input.
type gatedReader struct {
	r    io.Reader
	mu   sync.Mutex
	cond *sync.Cond
	open bool
}

func newGatedReader(r io.Reader) *gatedReader {
	g := &gatedReader{r: r}
	g.cond = sync.NewCond(&g.mu)
	return g
}

func (g *gatedReader) Open() {
	g.mu.Lock()
	g.open = true
	g.mu.Unlock()
	g.cond.Broadcast()
}

func (g *gatedReader) Read(p []byte) (int, error) {
	g.mu.Lock()
	for !g.open {
		g.cond.Wait()
	}
	g.mu.Unlock()

	n, err := g.r.Read(p)
	if bytes.ContainsAny(p[:n], "\r\n\x03\x04") {
		g.mu.Lock()
		g.open = false
		g.mu.Unlock()
	}
	return n, err
}
