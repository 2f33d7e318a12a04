package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestWhich(t *testing.T) {
	out, err := vostest.Command(Which, "which", "ls", "bogus", "cd").CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "ls: shell builtin\n-bash: which: no bogus in (builtins)\ncd: shell builtin\n", string(out))
}
