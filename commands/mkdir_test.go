package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestMkdir(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
		dirs []string
	}{
		"missing operand": {args: nil, want: "-bash: mkdir: missing operand\n"},
		"creates parents": {args: []string{"/tmp/a/b/c"}, dirs: []string{"/tmp/a", "/tmp/a/b/c"}},
		"relative":        {args: []string{"src"}, dirs: []string{"/home/user/src"}},
		"existing dir":    {args: []string{"/tmp"}, dirs: []string{"/tmp"}},
		"existing file": {
			args: []string{"/tmp/file.txt", "/tmp/ok"},
			want: "-bash: mkdir: cannot create directory '/tmp/file.txt': File exists\n",
			dirs: []string{"/tmp/ok"},
		},
		"verbose": {
			args: []string{"-v", "/tmp/x", "/tmp"},
			want: "mkdir: created directory '/tmp/x'\n",
			dirs: []string{"/tmp/x"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Mkdir, "mkdir", tc.args...)
			cmd.Setup = func(virtOS vos.VOS) error {
				return afero.WriteFile(virtOS, "/tmp/file.txt", nil, 0644)
			}

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
			for _, dir := range tc.dirs {
				assert.True(t, isDir(cmd.VOS, dir), "%s should be a directory", dir)
			}
		})
	}
}

func TestRmdir(t *testing.T) {
	cases := map[string]struct {
		args    []string
		want    string
		removed []string
	}{
		"missing operand": {args: nil, want: "-bash: rmdir: missing operand\n"},
		"empty":           {args: []string{"/tmp/empty"}, removed: []string{"/tmp/empty"}},
		"not empty": {
			args: []string{"/tmp/full", "/tmp/empty"},
			want: "-bash: rmdir: failed to remove '/tmp/full': Directory not empty\n",
			removed: []string{"/tmp/empty"},
		},
		"file": {
			args: []string{"/tmp/full/file.txt"},
			want: "-bash: rmdir: failed to remove '/tmp/full/file.txt': Not a directory\n",
		},
		"missing": {
			args: []string{"/tmp/nope"},
			want: "-bash: rmdir: failed to remove '/tmp/nope': No such file or directory\n",
		},
		"verbose": {
			args:    []string{"--verbose", "/tmp/empty"},
			want:    "rmdir: removing directory, '/tmp/empty'\n",
			removed: []string{"/tmp/empty"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Rmdir, "rmdir", tc.args...)
			cmd.Setup = func(virtOS vos.VOS) error {
				if err := virtOS.MkdirAll("/tmp/empty", 0755); err != nil {
					return err
				}
				if err := virtOS.MkdirAll("/tmp/full", 0755); err != nil {
					return err
				}
				return afero.WriteFile(virtOS, "/tmp/full/file.txt", nil, 0644)
			}

			out, err := cmd.CombinedOutput()

			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
			for _, dir := range tc.removed {
				assert.False(t, exists(cmd.VOS, dir), "%s should be removed", dir)
			}
		})
	}
}

func TestTouch(t *testing.T) {
	cmd := vostest.Command(Touch, "touch", "/tmp/new.txt", "/tmp/old.txt", "/tmp/nope/x.txt")
	cmd.Setup = func(virtOS vos.VOS) error {
		return afero.WriteFile(virtOS, "/tmp/old.txt", []byte("keep"), 0644)
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "-bash: touch: cannot touch '/tmp/nope/x.txt': No such file or directory\n", string(out))

	for _, name := range []string{"/tmp/new.txt", "/tmp/old.txt"} {
		stat, err := cmd.VOS.Stat(name)
		assert.NoError(t, err)
		assert.True(t, vostest.ReferenceTime.Equal(stat.ModTime()), "%s mtime", name)
	}
	assert.Equal(t, "keep", readString(t, cmd.VOS, "/tmp/old.txt"))
}

func TestTouch_noCreate(t *testing.T) {
	cmd := vostest.Command(Touch, "touch", "-c", "/tmp/new.txt")

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Empty(t, string(out))
	assert.False(t, exists(cmd.VOS, "/tmp/new.txt"))
}
