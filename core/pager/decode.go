package pager

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupportedEncoding is returned when none of the candidate encodings
// can decode the content without loss.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Decode converts data to UTF-8 using the first candidate encoding that
// decodes it losslessly, it returns the text and the encoding name used.
//
// Candidates are IANA names. UTF-8 must be valid as is. Other encodings fail
// if they are unknown or any byte maps to the replacement character.
func Decode(data []byte, candidates []string) (string, string, error) {
	for _, name := range candidates {
		if text, ok := decodeAs(data, name); ok {
			return text, name, nil
		}
	}

	return "", "", ErrUnsupportedEncoding
}

func decodeAs(data []byte, name string) (string, bool) {
	if isUTF8(name) {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", false
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}

	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	default:
		return false
	}
}

// splitLines splits text on newlines. A trailing newline does not start an
// extra line, and carriage returns before newlines are dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
