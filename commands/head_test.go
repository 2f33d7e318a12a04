package commands

import (
	"fmt"
	"strings"
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func numberedLines(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func headFixture(virtOS vos.VOS) error {
	if err := afero.WriteFile(virtOS, "/tmp/twelve.txt", []byte(numberedLines(12)), 0644); err != nil {
		return err
	}
	return afero.WriteFile(virtOS, "/tmp/three.txt", []byte(numberedLines(3)), 0644)
}

func TestHead(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"missing operand": {nil, "-bash: head: missing file operand\n"},
		"default":         {[]string{"/tmp/twelve.txt"}, "==> /tmp/twelve.txt <==\n" + numberedLines(10) + "\n"},
		"count":           {[]string{"-n", "2", "/tmp/twelve.txt"}, "==> /tmp/twelve.txt <==\nline 1\nline 2\n\n"},
		"long count":      {[]string{"--lines=1", "/tmp/three.txt"}, "==> /tmp/three.txt <==\nline 1\n\n"},
		"short file":      {[]string{"/tmp/three.txt"}, "==> /tmp/three.txt <==\n" + numberedLines(3) + "\n"},
		"bad count":       {[]string{"-n", "x", "/tmp/three.txt"}, "-bash: head: invalid number of lines\n"},
		"missing file": {
			[]string{"/tmp/nope", "/tmp/three.txt"},
			"-bash: head: cannot open '/tmp/nope' for reading: No such file or directory\n==> /tmp/three.txt <==\n" + numberedLines(3) + "\n",
		},
		"directory": {[]string{"/tmp"}, "-bash: head: error reading '/tmp': Is a directory\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Head, "head", tc.args...)
			cmd.Setup = headFixture

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestTail(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"missing operand": {nil, "-bash: tail: missing file operand\n"},
		"default":         {[]string{"/tmp/twelve.txt"}, "==> /tmp/twelve.txt <==\n" + strings.TrimPrefix(numberedLines(12), "line 1\nline 2\n") + "\n"},
		"count":           {[]string{"-n", "2", "/tmp/twelve.txt"}, "==> /tmp/twelve.txt <==\nline 11\nline 12\n\n"},
		"zero":            {[]string{"-n", "0", "/tmp/three.txt"}, "==> /tmp/three.txt <==\n\n"},
		"short file":      {[]string{"/tmp/three.txt"}, "==> /tmp/three.txt <==\n" + numberedLines(3) + "\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Tail, "tail", tc.args...)
			cmd.Setup = headFixture

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}
