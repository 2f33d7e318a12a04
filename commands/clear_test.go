package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestClear(t *testing.T) {
	out, err := vostest.Command(Clear, "clear").CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "\033[H\033[2J", string(out))
}

func TestReset(t *testing.T) {
	out, err := vostest.Command(Reset, "reset").CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "\033c", string(out))
}
