package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
)

// Cd changes the session's working directory. Arguments are joined with
// spaces so paths containing spaces work without quoting.
func Cd(ctx context.Context, virtOS vos.VOS) error {
	target := strings.Join(argsOf(virtOS), " ")

	switch {
	case target == "":
		return nil
	case target == "~":
		target = virtOS.HomeDir()
	case strings.HasPrefix(target, "~/"):
		target = filepath.Join(virtOS.HomeDir(), target[2:])
	case target == "-":
		previous, ok := virtOS.LookupEnv(vos.EnvOldPWD)
		if !ok {
			PrintError(virtOS, "cd: OLDPWD not set")
			return nil
		}
		if err := virtOS.Chdir(previous); err != nil {
			return err
		}
		fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
		return nil
	}

	return virtOS.Chdir(target)
}

func init() {
	mustAddCmd("cd", Cd)
}
