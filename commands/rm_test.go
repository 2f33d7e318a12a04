package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestRm(t *testing.T) {
	cases := map[string]struct {
		args      []string
		want      string
		remaining []string
		removed   []string
	}{
		"no operand": {
			args: []string{},
			want: "-bash: rm: missing operand\nTry 'rm --help' for more information.\n",
		},
		"no operand forced": {
			args: []string{"-f"},
			want: "",
		},
		"file": {
			args:    []string{"/tmp/a.txt"},
			removed: []string{"/tmp/a.txt"},
		},
		"missing": {
			args: []string{"/tmp/nope"},
			want: "-bash: rm: cannot remove '/tmp/nope': No such file or directory\n",
		},
		"missing forced": {
			args: []string{"-f", "/tmp/nope", "/tmp/a.txt"},
			removed: []string{"/tmp/a.txt"},
		},
		"directory": {
			args:      []string{"/tmp/dir"},
			want:      "-bash: rm: cannot remove '/tmp/dir': Is a directory\n",
			remaining: []string{"/tmp/dir/b.txt"},
		},
		"recursive": {
			args:    []string{"-r", "/tmp/dir"},
			removed: []string{"/tmp/dir", "/tmp/dir/b.txt"},
		},
		"recursive alias": {
			args:    []string{"-R", "/tmp/dir"},
			removed: []string{"/tmp/dir"},
		},
		"continues after failure": {
			args:    []string{"/tmp/nope", "/tmp/a.txt"},
			want:    "-bash: rm: cannot remove '/tmp/nope': No such file or directory\n",
			removed: []string{"/tmp/a.txt"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Rm, "rm", tc.args...)
			cmd.Setup = func(virtOS vos.VOS) error {
				if err := afero.WriteFile(virtOS, "/tmp/a.txt", []byte("a"), 0644); err != nil {
					return err
				}
				if err := virtOS.MkdirAll("/tmp/dir", 0755); err != nil {
					return err
				}
				return afero.WriteFile(virtOS, "/tmp/dir/b.txt", []byte("b"), 0644)
			}

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
			for _, name := range tc.remaining {
				assert.True(t, exists(cmd.VOS, name), "%s should remain", name)
			}
			for _, name := range tc.removed {
				assert.False(t, exists(cmd.VOS, name), "%s should be removed", name)
			}
		})
	}
}
