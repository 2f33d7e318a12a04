package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestDiffLines(t *testing.T) {
	cases := map[string]struct {
		left, right []string
		want        []string
	}{
		"same":    {[]string{"a", "b"}, []string{"a", "b"}, nil},
		"changed": {[]string{"a", "b"}, []string{"a", "x"}, []string{"2c2", "< b", "> x"}},
		"deleted": {[]string{"a", "b", "c"}, []string{"a"}, []string{"2d1", "< b", "3d2", "< c"}},
		"added":   {[]string{"a"}, []string{"a", "b"}, []string{"1a2", "> b"}},
		"trimmed": {[]string{"  a"}, []string{"b  "}, []string{"1c1", "< a", "> b"}},
		"empty":   {nil, []string{"a"}, []string{"0a1", "> a"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, diffLines(tc.left, tc.right))
		})
	}
}

func TestDiff(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"one file":  {[]string{"/tmp/a.txt"}, "-bash: diff: need exactly two files to compare\n"},
		"identical": {[]string{"/tmp/a.txt", "/tmp/a.txt"}, ""},
		"different": {[]string{"/tmp/a.txt", "/tmp/b.txt"}, "2c2\n< two\n> TWO\n3d2\n< three\n"},
		"missing":   {[]string{"/tmp/a.txt", "/tmp/nope"}, "-bash: diff: /tmp/nope: No such file or directory\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Diff, "diff", tc.args...)
			cmd.Setup = func(virtOS vos.VOS) error {
				if err := afero.WriteFile(virtOS, "/tmp/a.txt", []byte("one\ntwo\nthree\n"), 0644); err != nil {
					return err
				}
				return afero.WriteFile(virtOS, "/tmp/b.txt", []byte("one\nTWO\n"), 0644)
			}

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}
