package pager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedInput answers Ready from a script, falling back to whether lines
// remain.
type scriptedInput struct {
	ready   []bool
	lines   []string
	err     error
	prompts []string
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) Ready(time.Duration) (bool, error) {
	if len(s.ready) > 0 {
		r := s.ready[0]
		s.ready = s.ready[1:]
		return r, nil
	}
	return len(s.lines) > 0, nil
}

const (
	pause       = DefaultMarker + clearLine
	greekLetter = "alpha\nbeta\ngamma\ndelta\nepsilon\nzeta\n"
)

func TestViewer_View(t *testing.T) {
	cases := map[string]struct {
		data      string
		ready     []bool
		lines     []string
		wantOut   string
		wantStats Stats
		prompts   []string
	}{
		"empty": {
			data:      "",
			wantOut:   "",
			wantStats: Stats{Encoding: "utf-8", Displays: 1},
		},
		"fits on one page": {
			data:      "one\ntwo\n",
			wantOut:   "one\ntwo\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 2, Displays: 1},
		},
		"no input pages through": {
			data:      greekLetter,
			wantOut:   "alpha\nbeta\n" + pause + "gamma\ndelta\n" + pause + "epsilon\nzeta\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 3},
		},
		"quit": {
			data:      greekLetter,
			lines:     []string{"q"},
			wantOut:   "alpha\nbeta\n" + pause,
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 1, Quit: true},
			prompts:   []string{DefaultMarker},
		},
		"quit uppercase": {
			data:      greekLetter,
			lines:     []string{"Q"},
			wantOut:   "alpha\nbeta\n" + pause,
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 1, Quit: true},
			prompts:   []string{DefaultMarker},
		},
		"end of input quits": {
			data:      greekLetter,
			ready:     []bool{true},
			wantOut:   "alpha\nbeta\n" + pause,
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 1, Quit: true},
			prompts:   []string{DefaultMarker},
		},
		"other input shows next page": {
			data:      greekLetter,
			lines:     []string{"", "x"},
			wantOut:   "alpha\nbeta\n" + pause + "gamma\ndelta\n" + pause + "epsilon\nzeta\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 3},
			prompts:   []string{DefaultMarker, DefaultMarker},
		},
		"search ignores case": {
			data:      greekLetter,
			lines:     []string{"/EPS"},
			wantOut:   "alpha\nbeta\n" + pause + "epsilon\nzeta\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 2, Searches: 1},
			prompts:   []string{DefaultMarker},
		},
		"search includes cursor line": {
			data:      greekLetter,
			lines:     []string{"/gamma"},
			wantOut:   "alpha\nbeta\n" + pause + "gamma\ndelta\n" + pause + "epsilon\nzeta\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 3, Searches: 1},
			prompts:   []string{DefaultMarker},
		},
		"search skips displayed lines": {
			data:  greekLetter,
			ready: []bool{true, false, false},
			lines: []string{"/alpha"},
			wantOut: "alpha\nbeta\n" + pause + notFound + "\n" +
				pause + "gamma\ndelta\n" + pause + "epsilon\nzeta\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 3, Searches: 1, Misses: 1},
			prompts:   []string{DefaultMarker},
		},
		"search prompt": {
			data:      greekLetter,
			lines:     []string{"/", "delta"},
			wantOut:   "alpha\nbeta\n" + pause + "delta\nepsilon\n" + pause + "zeta\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 6, Displays: 3, Searches: 1},
			prompts:   []string{DefaultMarker, searchPrompt},
		},
		"crlf line endings": {
			data:      "one\r\ntwo\r\nthree",
			wantOut:   "one\ntwo\n" + pause + "three\n",
			wantStats: Stats{Encoding: "utf-8", Lines: 3, Displays: 2},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			in := &scriptedInput{ready: tc.ready, lines: tc.lines}
			out := &bytes.Buffer{}

			viewer := New(in, out, Options{PageSize: 2})
			stats, err := viewer.View(context.Background(), []byte(tc.data))

			require.NoError(t, err)
			assert.Equal(t, tc.wantOut, out.String())
			assert.Equal(t, tc.wantStats, stats)
			assert.Equal(t, tc.prompts, in.prompts)
		})
	}
}

func TestViewer_View_interrupted(t *testing.T) {
	interrupted := errors.New("interrupted")
	in := &scriptedInput{ready: []bool{true}, err: interrupted}
	out := &bytes.Buffer{}

	stats, err := New(in, out, Options{PageSize: 2}).View(context.Background(), []byte(greekLetter))

	assert.ErrorIs(t, err, interrupted)
	assert.False(t, stats.Quit)
	assert.Equal(t, "alpha\nbeta\n"+pause, out.String())
}

func TestViewer_View_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	_, err := New(&scriptedInput{}, out, Options{}).View(ctx, []byte(greekLetter))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestViewer_View_unsupportedEncoding(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := New(&scriptedInput{}, out, Options{Encodings: []string{"utf-8"}}).
		View(context.Background(), []byte("caf\xe9\n"))

	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.Empty(t, out.String())
}

func TestViewer_View_pageSizeDefault(t *testing.T) {
	var data strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&data, "line %d\n", i)
	}

	out := &bytes.Buffer{}
	stats, err := New(&scriptedInput{}, out, Options{}).View(context.Background(), []byte(data.String()))

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Displays)
	assert.Equal(t, 25, stats.Lines)

	firstPage, _, found := strings.Cut(out.String(), DefaultMarker)
	require.True(t, found)
	assert.Equal(t, DefaultPageSize, strings.Count(firstPage, "\n"))
}

func TestDecode(t *testing.T) {
	cases := map[string]struct {
		data         string
		candidates   []string
		wantText     string
		wantEncoding string
		wantErr      error
	}{
		"utf-8": {
			data:         "¡Hola!\n",
			candidates:   []string{"utf-8", "windows-1252"},
			wantText:     "¡Hola!\n",
			wantEncoding: "utf-8",
		},
		"falls through to third candidate": {
			data:         "\xa1Hola\n",
			candidates:   []string{"utf-8", "iso-8859-6", "windows-1252"},
			wantText:     "¡Hola\n",
			wantEncoding: "windows-1252",
		},
		"cyrillic": {
			data:         "\xcf\xf0\xe8\xe2\xe5\xf2",
			candidates:   []string{"utf-8", "windows-1251"},
			wantText:     "Привет",
			wantEncoding: "windows-1251",
		},
		"unknown names are skipped": {
			data:         "\xe9",
			candidates:   []string{"not-a-charset", "iso-8859-1"},
			wantText:     "é",
			wantEncoding: "iso-8859-1",
		},
		"nothing fits": {
			data:       "\xa1",
			candidates: []string{"utf-8", "iso-8859-6"},
			wantErr:    ErrUnsupportedEncoding,
		},
		"no candidates": {
			data:    "plain",
			wantErr: ErrUnsupportedEncoding,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			text, encoding, err := Decode([]byte(tc.data), tc.candidates)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantText, text)
			assert.Equal(t, tc.wantEncoding, encoding)
		})
	}
}

func ExamplePhase_String() {
	fmt.Println(PhasePaused)
	fmt.Println(PhaseSearching)
	// Output: paused
	// searching
}
