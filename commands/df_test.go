package commands

import (
	"path"
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestDf(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"kilobytes": {
			nil,
			"Filesystem     1K-blocks    Used Available Use% Mounted on\n" +
				"/dev/sda1       20971520 5242880  15728640  25% /\n",
		},
		"human": {
			[]string{"-h"},
			"Filesystem          Size    Used Available Use% Mounted on\n" +
				"/dev/sda1            21G    5.4G       16G  25% /\n",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			out, err := vostest.Command(Df, "df", tc.args...).CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func duFixture(virtOS vos.VOS) error {
	files := map[string]int{
		"/tmp/t/a.txt":       2048,
		"/tmp/t/d/b.txt":     1024,
		"/tmp/t/d/e/c.txt":   0,
		"/tmp/t/d/e/log.txt": 512,
	}
	for name, size := range files {
		if err := virtOS.MkdirAll(path.Dir(name), 0755); err != nil {
			return err
		}
		if err := afero.WriteFile(virtOS, name, make([]byte, size), 0644); err != nil {
			return err
		}
	}
	return nil
}

func TestDu(t *testing.T) {
	cases := map[string]struct {
		args []string
		dir  string
		want string
	}{
		"tree":    {[]string{"/tmp/t"}, "", "3\t/tmp/t\n"},
		"subdir":  {[]string{"/tmp/t/d"}, "", "1\t/tmp/t/d\n"},
		"default": {nil, "/tmp/t/d/e", "0\t.\n"},
		"file":    {[]string{"/tmp/t/a.txt"}, "", "2\t/tmp/t/a.txt\n"},
		"missing": {[]string{"/tmp/nope"}, "", "-bash: du: cannot access '/tmp/nope': No such file or directory\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Du, "du", tc.args...)
			cmd.Setup = duFixture
			cmd.Dir = tc.dir
			if tc.dir != "" {
				// The directory has to exist before the session can enter it.
				assert.NoError(t, duFixture(cmd.VOS))
			}

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}
