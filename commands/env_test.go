package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg": {[]string{"env"}},
		"help":   {[]string{"env", "--help"}},
	}

	cases.Run(t, Env)
}

func TestEnv_contents(t *testing.T) {
	cmd := vostest.Command(Env, "env")
	cmd.VOS.Setenv("C", "charlie")
	cmd.VOS.Setenv("A", "alpha")
	cmd.VOS.Setenv("B", "bravo")

	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, "A=alpha\nB=bravo\nC=charlie\nHOME=/home/user\nPATH=/usr/local/bin:/usr/bin:/bin\nPWD=/home/user\nSHELL=/bin/bash\nUSER=user\n", string(out))
}
