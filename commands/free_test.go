package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestFree(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg": {[]string{"free"}},
		"human":  {[]string{"free", "-h"}},
	}

	cases.Run(t, Free)
}

func TestFree_help(t *testing.T) {
	out, err := vostest.Command(Free, "free", "-?").CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(out), "usage: free [OPTION]...")
	assert.Contains(t, string(out), "-h, --human-readable")
}
