package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

const bcAllowed = "0123456789+-*/(). "

var (
	errBcForbidden = errors.New("Only basic arithmetic operations allowed")
	errBcInvalid   = errors.New("Invalid expression")
)

// Bc is an interactive integer calculator, it reads expressions until
// "quit" or end of input.
func Bc(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "bc",
		Short: "An arbitrary precision calculator language.",
	}

	return cmd.RunE(virtOS, func() error {
		w := virtOS.Stdout()
		fmt.Fprintln(w, "Simple calculator. Enter 'quit' to exit.")

		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			line, err := virtOS.Console().ReadLine("> ")
			if errors.Is(err, io.EOF) || errors.Is(err, vos.ErrInterrupted) {
				fmt.Fprintln(w)
				return nil
			}
			if err != nil {
				return err
			}

			if strings.EqualFold(strings.TrimSpace(line), "quit") {
				return nil
			}

			result, err := evalArithmetic(line)
			switch {
			case err != nil:
				fmt.Fprintf(w, "Error: %s\n", err)
			case result != "":
				fmt.Fprintln(w, result)
			}
		}
	})
}

// evalArithmetic evaluates an integer expression using POSIX shell
// arithmetic. Blank input gives an empty result.
func evalArithmetic(line string) (string, error) {
	if strings.ContainsFunc(line, func(r rune) bool { return !strings.ContainsRune(bcAllowed, r) }) {
		return "", errBcForbidden
	}
	if strings.TrimSpace(line) == "" {
		return "", nil
	}

	expr, err := syntax.NewParser().Arithmetic(strings.NewReader(line))
	if err != nil {
		return "", errBcInvalid
	}
	if expr == nil {
		return "", nil
	}

	result, err := expand.Arithm(&expand.Config{Env: expand.ListEnviron()}, expr)
	if err != nil {
		return "", errBcInvalid
	}
	return fmt.Sprint(result), nil
}

var _ vos.ProcessFunc = Bc

func init() {
	mustAddCmd("bc", Bc)
}
