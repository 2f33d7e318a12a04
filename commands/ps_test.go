package commands

import (
	"errors"
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestPs(t *testing.T) {
	for _, args := range [][]string{nil, {"aux"}, {"-a", "-u", "-x"}} {
		out, err := vostest.Command(Ps, "ps", args...).CombinedOutput()

		assert.NoError(t, err)
		assert.Equal(t, ""+
			"USER       PID %CPU %MEM    VSZ   RSS STAT COMMAND\n"+
			"root         1  0.0  0.1 172032 12288 S    /sbin/init\n"+
			"user        42  0.5  0.4   9216  5120 R    -bash\n", string(out), "args: %v", args)
	}
}

func TestPs_hostError(t *testing.T) {
	cmd := vostest.Command(Ps, "ps")
	cmd.Setup = func(virtOS vos.VOS) error {
		virtOS.Host().(*vostest.FakeHost).Err = errors.New("no procfs")
		return nil
	}

	err := cmd.Run()

	assert.EqualError(t, err, "no procfs")
}
