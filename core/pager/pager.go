// Package pager pages text one screen at a time in the style of more(1),
// letting the user skip ahead, search or quit between pages.
package pager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	DefaultPageSize = 20
	DefaultMarker   = "--More--"

	searchPrompt = "Search: "
	notFound     = "Pattern not found"

	// clearLine returns the cursor to column zero and erases the line.
	clearLine = "\r\033[K"
)

// Phase is a state of the viewer.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseDisplaying
	PhasePaused
	PhaseSearching
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseDisplaying:
		return "displaying"
	case PhasePaused:
		return "paused"
	case PhaseSearching:
		return "searching"
	case PhaseQuit:
		return "quit"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Input is where the viewer reads user commands from.
type Input interface {
	// ReadLine shows prompt and reads one line.
	ReadLine(prompt string) (string, error)
	// Ready reports whether a line can be read, waiting at most wait.
	Ready(wait time.Duration) (bool, error)
}

// Options configures a Viewer.
type Options struct {
	// PageSize is the number of lines shown per page.
	PageSize int
	// Encodings are tried in order when decoding content.
	Encodings []string
	// Marker is shown while paused between pages.
	Marker string
	// PollWait is how long to wait for input at each pause before showing
	// the next page.
	PollWait time.Duration
}

// Stats summarizes a single View call.
type Stats struct {
	Encoding string
	Lines    int
	Displays int
	Searches int
	Misses   int
	// Quit is set when the user asked to stop before the end.
	Quit bool
}

// Viewer pages content to an output.
type Viewer struct {
	in   Input
	out  io.Writer
	opts Options
}

// New creates a Viewer, zero options are replaced by defaults.
func New(in Input, out io.Writer, opts Options) *Viewer {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	if len(opts.Encodings) == 0 {
		opts.Encodings = []string{"utf-8"}
	}
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}

	return &Viewer{in: in, out: out, opts: opts}
}

// View decodes data and pages it. It returns ErrUnsupportedEncoding before
// writing anything if data can't be decoded. Interrupted reads and context
// cancellation end the view with an error.
func (v *Viewer) View(ctx context.Context, data []byte) (Stats, error) {
	var stats Stats

	text, encoding, err := Decode(data, v.opts.Encodings)
	if err != nil {
		return stats, err
	}
	stats.Encoding = encoding

	lines := splitLines(text)
	total := len(lines)
	stats.Lines = total

	pageSize := min(v.opts.PageSize, total)
	cursor := 0
	term := ""
	phase := PhaseDisplaying

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		switch phase {
		case PhaseDisplaying:
			end := min(cursor+pageSize, total)
			for _, line := range lines[cursor:end] {
				fmt.Fprintln(v.out, line)
			}
			cursor = end
			stats.Displays++

			if cursor >= total {
				return stats, nil
			}
			phase = PhasePaused

		case PhasePaused:
			phase, term, err = v.pause()
			if err != nil {
				return stats, err
			}

		case PhaseSearching:
			stats.Searches++
			if idx := search(lines, cursor, term); idx >= 0 {
				cursor = idx
				phase = PhaseDisplaying
			} else {
				stats.Misses++
				fmt.Fprintln(v.out, notFound)
				phase = PhasePaused
			}

		case PhaseQuit:
			stats.Quit = true
			return stats, nil
		}
	}
}

// pause shows the marker and decides what happens next based on the
// user's input, if any.
func (v *Viewer) pause() (Phase, string, error) {
	io.WriteString(v.out, v.opts.Marker)

	ready, err := v.in.Ready(v.opts.PollWait)
	io.WriteString(v.out, clearLine)
	if err != nil {
		return PhaseQuit, "", err
	}
	if !ready {
		return PhaseDisplaying, "", nil
	}

	line, err := v.in.ReadLine(v.opts.Marker)
	switch {
	case errors.Is(err, io.EOF):
		return PhaseQuit, "", nil
	case err != nil:
		return PhaseQuit, "", err
	}

	command := strings.TrimSpace(line)
	switch {
	case strings.EqualFold(command, "q"):
		return PhaseQuit, "", nil

	case strings.HasPrefix(command, "/"):
		term := command[1:]
		if term == "" {
			term, err = v.in.ReadLine(searchPrompt)
			switch {
			case errors.Is(err, io.EOF):
				return PhaseQuit, "", nil
			case err != nil:
				return PhaseQuit, "", err
			}
		}
		return PhaseSearching, term, nil

	default:
		return PhaseDisplaying, "", nil
	}
}

// search finds the first line at or after start containing term, ignoring
// case. It returns -1 if there is none.
func search(lines []string, start int, term string) int {
	needle := strings.ToLower(term)
	for i := start; i < len(lines); i++ {
		if strings.Contains(strings.ToLower(lines[i]), needle) {
			return i
		}
	}
	return -1
}
