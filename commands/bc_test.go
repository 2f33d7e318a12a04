package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestEvalArithmetic(t *testing.T) {
	cases := map[string]struct {
		line    string
		want    string
		wantErr error
	}{
		"add":            {"1 + 2", "3", nil},
		"precedence":     {"1 + 2*3", "7", nil},
		"parens":         {"(1+2) * 3", "9", nil},
		"integer divide": {"10/3", "3", nil},
		"negative":       {"2 - 5", "-3", nil},
		"blank":          {"   ", "", nil},
		"letters":        {"x + 1", "", errBcForbidden},
		"shell syntax":   {"$(reboot)", "", errBcForbidden},
		"dangling":       {"1 +", "", errBcInvalid},
		"divide by zero": {"1/0", "", errBcInvalid},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := evalArithmetic(tc.line)

			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBc(t *testing.T) {
	cmd := vostest.Command(Bc, "bc")
	cmd.Stdin = []string{"2 * 21", "", "x", "quit", "1 + 1"}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, ""+
		"Simple calculator. Enter 'quit' to exit.\n"+
		"> 2 * 21\n42\n"+
		"> \n"+
		"> x\nError: Only basic arithmetic operations allowed\n"+
		"> quit\n", string(out))
	assert.Equal(t, []string{"1 + 1"}, cmd.Console.Lines, "input after quit is left unread")
}

func TestBc_endOfInput(t *testing.T) {
	cmd := vostest.Command(Bc, "bc")
	cmd.Stdin = []string{"3-1"}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "Simple calculator. Enter 'quit' to exit.\n> 3-1\n2\n> \n", string(out))
}
