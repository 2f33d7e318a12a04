package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestFixedCommands(t *testing.T) {
	cases := map[string]string{
		"history": "History functionality has been disabled\n",
		"jobs":    "No job control in this shell\n",
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			cmd, ok := AllCommands.Lookup(name)
			assert.True(t, ok)

			out, err := vostest.Command(cmd, name, "-c").CombinedOutput()

			assert.NoError(t, err)
			assert.Contains(t, string(out), "usage: "+name)
			assert.NotContains(t, string(out), want)

			out, err = vostest.Command(cmd, name).CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, want, string(out))
		})
	}
}

func TestFixedCommand_silent(t *testing.T) {
	cmd := (&FixedCommand{Name: "true", Use: "true", Short: "Do nothing."}).ToCommand()

	out, err := vostest.Command(cmd, "true").CombinedOutput()

	assert.NoError(t, err)
	assert.Empty(t, out)
}
