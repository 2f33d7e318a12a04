package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/josephlewis42/debsh/core/vos"
)

type wcCount struct {
	bytes int
	lines int
	chars int
	words int

	inWord bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		w.bytes++

		// Assume UTF-8, continuation bytes have the top bits 0b10.
		if c < 0b10000000 || c > 0b10111111 {
			w.chars++
		}

		if c == '\n' {
			w.lines++
		}

		if unicode.IsSpace(rune(c)) {
			w.inWord = false
		} else if !w.inWord {
			w.words++
			w.inWord = true
		}
	}

	return len(data), nil
}

func countReader(r io.Reader) (*wcCount, error) {
	var out wcCount
	if _, err := io.Copy(&out, r); err != nil {
		return nil, err
	}
	return &out, nil
}

// Wc prints line, word and character counts for each file.
func Wc(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "wc [-lwcm] FILE...",
		Short: "Print newline, word, and character counts for each FILE.",
	}

	opts := cmd.Flags()
	writeLines := opts.BoolLong("lines", 'l', "print the newline counts")
	writeWords := opts.BoolLong("words", 'w', "print the word counts")
	writeBytes := opts.BoolLong("bytes", 'c', "print the byte counts")
	writeChars := opts.BoolLong("chars", 'm', "print the character counts")

	return cmd.RunE(virtOS, func() error {
		files := opts.Args()
		if len(files) == 0 {
			PrintError(virtOS, "wc: missing file operand")
			return nil
		}

		nonePicked := !(*writeLines || *writeWords || *writeBytes || *writeChars)

		var cols []func(*wcCount) int
		if *writeLines || nonePicked {
			cols = append(cols, func(w *wcCount) int { return w.lines })
		}
		if *writeWords || nonePicked {
			cols = append(cols, func(w *wcCount) int { return w.words })
		}
		if *writeChars || nonePicked {
			cols = append(cols, func(w *wcCount) int { return w.chars })
		}
		if *writeBytes {
			cols = append(cols, func(w *wcCount) int { return w.bytes })
		}

		for _, file := range files {
			content, err := readFile(virtOS, file)
			if err != nil {
				PrintError(virtOS, "wc: '%s': %s", file, describeErr(err))
				continue
			}

			count, err := countReader(bytes.NewReader(content))
			if err != nil {
				return err
			}

			var fields []string
			for _, col := range cols {
				fields = append(fields, fmt.Sprint(col(count)))
			}
			fields = append(fields, file)
			fmt.Fprintln(virtOS.Stdout(), strings.Join(fields, "\t"))
		}

		return nil
	})
}

var _ vos.ProcessFunc = Wc

func init() {
	mustAddCmd("wc", Wc)
}
