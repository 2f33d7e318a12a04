package vostest

import (
	"io"
	"time"

	"github.com/josephlewis42/debsh/core/vos"
)

// ScriptedConsole replays lines of input the way a user at a terminal would
// type them.
type ScriptedConsole struct {
	// Lines are returned by ReadLine in order, io.EOF follows the last one.
	Lines []string
	// ReadyAnswers are returned by Ready in order. Once exhausted Ready
	// reports whether any Lines remain.
	ReadyAnswers []bool
	// Prompts records every prompt passed to ReadLine.
	Prompts []string
	// InterruptAtEnd returns vos.ErrInterrupted instead of io.EOF once Lines
	// run out.
	InterruptAtEnd bool

	// Out receives prompts and echoed input.
	Out io.Writer
}

var _ vos.Console = (*ScriptedConsole)(nil)

// ReadLine implements vos.Console.ReadLine.
func (c *ScriptedConsole) ReadLine(prompt string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	c.write(prompt)

	if len(c.Lines) == 0 {
		if c.InterruptAtEnd {
			c.write("^C")
			return "", vos.ErrInterrupted
		}
		return "", io.EOF
	}

	line := c.Lines[0]
	c.Lines = c.Lines[1:]
	c.write(line + "\n")
	return line, nil
}

// Ready implements vos.Console.Ready.
func (c *ScriptedConsole) Ready(time.Duration) (bool, error) {
	if len(c.ReadyAnswers) > 0 {
		ready := c.ReadyAnswers[0]
		c.ReadyAnswers = c.ReadyAnswers[1:]
		return ready, nil
	}
	return len(c.Lines) > 0, nil
}

func (c *ScriptedConsole) write(s string) {
	if c.Out != nil {
		io.WriteString(c.Out, s)
	}
}
