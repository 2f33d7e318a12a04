package commands

import (
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestCat(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg":  {[]string{"cat"}},
		"help":    {[]string{"cat", "--help"}},
		"missing": {[]string{"cat", "does not exist.txt"}},
	}

	cases.Run(t, Cat)
}

func TestCat_files(t *testing.T) {
	cmd := vostest.Command(Cat, "cat", "/foo.txt", "/bar.txt")

	// Missing files are reported but don't fail the command.
	{
		out, err := cmd.CombinedOutput()

		assert.Nil(t, err)
		assert.Equal(t, "-bash: cat: /foo.txt: No such file or directory\n-bash: cat: /bar.txt: No such file or directory\n", string(out))
	}
	{
		assert.Nil(t, afero.WriteFile(cmd.VOS, "/foo.txt", []byte("Hello, world!"), 0600))
		assert.Nil(t, afero.WriteFile(cmd.VOS, "/bar.txt", []byte("second\n"), 0600))

		out, err := cmd.CombinedOutput()

		assert.Nil(t, err)
		assert.Equal(t, "Hello, world!\nsecond\n", string(out))
	}
}

func TestCat_directory(t *testing.T) {
	out, err := vostest.Command(Cat, "cat", "/tmp").CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, "-bash: cat: /tmp: Is a directory\n", string(out))
}

func TestCat_stdin(t *testing.T) {
	cmd := vostest.Command(Cat, "cat")
	cmd.Stdin = []string{"one", "two"}

	out, err := cmd.Output()

	assert.Nil(t, err)
	// The console echoes typed lines, cat repeats them.
	assert.Equal(t, "one\none\ntwo\ntwo\n", string(out))
}
