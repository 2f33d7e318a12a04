package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func statFixture(virtOS vos.VOS) error {
	files := map[string]string{
		"/tmp/a.txt":    "hello",
		"/tmp/empty":    "",
		"/tmp/main.PY":  "print()",
		"/tmp/data.bin": "\x00\x01",
		"/tmp/pic.jpeg": "\xff\xd8",
		"/tmp/cv.pdf":   "%PDF",
	}
	for name, content := range files {
		if err := afero.WriteFile(virtOS, name, []byte(content), 0644); err != nil {
			return err
		}
	}
	return virtOS.Chtimes("/tmp/a.txt", vostest.ReferenceTime, vostest.ReferenceTime)
}

func TestStat(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"missing operand": {nil, "-bash: stat: missing file operand\n"},
		"file": {
			[]string{"/tmp/a.txt"},
			"  File: /tmp/a.txt\n" +
				"  Size: 5\tBlocks: 1\tIO Block: 4096\tregular file\n" +
				"Access: (0644/-rw-r--r--)\n" +
				"Modify: 2006-01-02 03:04:05.000000000 +0000\n",
		},
		"missing file": {
			[]string{"/tmp/nope"},
			"-bash: stat: cannot stat '/tmp/nope': No such file or directory\n",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Stat, "stat", tc.args...)
			cmd.Setup = statFixture

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestStat_kinds(t *testing.T) {
	cmd := vostest.Command(Stat, "stat", "/tmp/empty", "/tmp")
	cmd.Setup = statFixture

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(out), "  File: /tmp/empty\n  Size: 0\tBlocks: 0\tIO Block: 4096\tregular empty file\n")
	assert.Contains(t, string(out), "  File: /tmp\n")
	assert.Contains(t, string(out), "\tdirectory\nAccess: (0777/drwxrwxrwx)\n")
}

func TestFile(t *testing.T) {
	cmd := vostest.Command(File, "file",
		"/tmp/a.txt", "/tmp/main.PY", "/tmp/pic.jpeg", "/tmp/cv.pdf", "/tmp/data.bin", "/tmp", "/tmp/nope")
	cmd.Setup = statFixture

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, ""+
		"/tmp/a.txt: ASCII text\n"+
		"/tmp/main.PY: source code\n"+
		"/tmp/pic.jpeg: image data\n"+
		"/tmp/cv.pdf: document\n"+
		"/tmp/data.bin: regular file\n"+
		"/tmp: directory\n"+
		"/tmp/nope: cannot open '/tmp/nope' (No such file or directory)\n", string(out))
}

func TestFile_missingOperand(t *testing.T) {
	out, err := vostest.Command(File, "file").CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "-bash: file: missing file operand\n", string(out))
}
