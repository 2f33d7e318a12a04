package vos

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatedReader(t *testing.T) {
	gate := newGatedReader(strings.NewReader("ls\npwd\n"))
	buf := make([]byte, 3)

	readDone := make(chan string)
	go func() {
		n, _ := gate.Read(buf)
		readDone <- string(buf[:n])
	}()

	select {
	case <-readDone:
		t.Fatal("read passed a closed gate")
	case <-time.After(20 * time.Millisecond):
	}

	gate.Open()
	assert.Equal(t, "ls\n", <-readDone)

	go func() {
		n, _ := gate.Read(buf)
		readDone <- string(buf[:n])
	}()

	select {
	case <-readDone:
		t.Fatal("gate did not close after a newline")
	case <-time.After(20 * time.Millisecond):
	}

	gate.Open()
	assert.Equal(t, "pwd", <-readDone)
}

func TestLineConsole_interrupt(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	console := NewLineConsole(pr, io.Discard)

	readDone := make(chan error)
	go func() {
		_, err := console.ReadLine("> ")
		readDone <- err
	}()

	select {
	case <-readDone:
		t.Fatal("read returned without input")
	case <-time.After(20 * time.Millisecond):
	}

	console.Interrupt()
	assert.ErrorIs(t, <-readDone, ErrInterrupted)

	// The read left waiting in the background gets the next line.
	go io.WriteString(pw, "late\n")
	line, err := console.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "late", line)
}

func TestLineConsole_interruptBeforeRead(t *testing.T) {
	cases := map[string]struct {
		clear bool
		want  error
	}{
		"pending interrupt": {false, ErrInterrupted},
		"cleared interrupt": {true, nil},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			pr, pw := io.Pipe()
			defer pw.Close()
			console := NewLineConsole(pr, io.Discard)

			console.Interrupt()
			console.Interrupt()
			if tc.clear {
				console.ClearInterrupt()
				go io.WriteString(pw, "ls\n")
			}

			_, err := console.ReadLine("> ")
			assert.Equal(t, tc.want, err)
		})
	}
}
