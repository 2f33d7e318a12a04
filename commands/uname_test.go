package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestUname(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg":  {[]string{"uname"}},
		"all":     {[]string{"uname", "-a"}},
		"kernel":  {[]string{"uname", "-srv"}},
		"node":    {[]string{"uname", "-n"}},
		"machine": {[]string{"uname", "-m"}},
	}

	cases.Run(t, Uname)
}

func TestUname_invalid(t *testing.T) {
	out, err := vostest.Command(Uname, "uname", "-z").CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(out), "-bash: uname: ")
	assert.Contains(t, string(out), "usage: uname [OPTION]...")
	assert.Contains(t, string(out), "--kernel-release")
}
