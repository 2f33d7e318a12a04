package commands

import "strings"

// Invocation is a parsed input line.
type Invocation struct {
	Name string
	Args []string
}

// Empty is true when the line held nothing to run.
func (i Invocation) Empty() bool {
	return i.Name == ""
}

// Argv returns the name followed by the arguments.
func (i Invocation) Argv() []string {
	if i.Empty() {
		return nil
	}
	return append([]string{i.Name}, i.Args...)
}

// ParseLine splits a line on runs of whitespace. Quotes, escapes and globs
// have no special meaning, commands that take paths with spaces join their
// arguments back together.
func ParseLine(line string) Invocation {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}
	}

	return Invocation{
		Name: fields[0],
		Args: fields[1:],
	}
}
