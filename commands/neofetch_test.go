package commands

import (
	"strings"
	"testing"

	"github.com/josephlewis42/debsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestNeofetch(t *testing.T) {
	out, err := vostest.Command(Neofetch, "neofetch").CombinedOutput()

	assert.NoError(t, err)
	for _, want := range []string{
		"user@debian",
		"OS: Debian 12.5",
		"Kernel: 6.1.0-18-amd64",
		"Uptime: 3 days 2 hours 5 minutes",
		"Shell: bash",
		"CPU: Intel(R) Xeon(R) CPU @ 2.20GHz",
		"Memory: 8.0GB",
	} {
		assert.Contains(t, string(out), want)
	}

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	// The details run one line past the logo.
	assert.Len(t, lines, len(debianArt)+1)
	assert.True(t, strings.HasPrefix(lines[0], "`d$$'"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "user@debian"), lines[0])
	for _, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestLshw(t *testing.T) {
	out, err := vostest.Command(Lshw, "lshw").CombinedOutput()

	assert.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "HARDWARE INFORMATION\n"+strings.Repeat("-", 60)+"\n"))
	for _, want := range []string{
		"System:\n",
		"Processor:\n",
		"Memory:\n",
		"Node Name:",
		"x86_64",
		"Intel(R) Xeon(R) CPU @ 2.20GHz",
		"2200MHz",
		"8192 MB",
	} {
		assert.Contains(t, text, want)
	}
}

func TestHelp(t *testing.T) {
	out, err := vostest.Command(Help, "help").CombinedOutput()

	assert.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Builtin commands")
	for _, name := range AllCommands.Names() {
		assert.Contains(t, text, name)
	}
}
