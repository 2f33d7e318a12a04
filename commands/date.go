package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

const dateLayout = "Mon Jan 02 15:04:05 MST 2006"

// Date prints the current local time.
func Date(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "date [OPTION]...",
		Short: "Display the current time.",
	}

	utc := cmd.Flags().BoolLong("utc", 'u', "print Coordinated Universal Time (UTC)")

	return cmd.RunE(virtOS, func() error {
		now := virtOS.Now()
		if *utc {
			now = now.UTC()
		}
		fmt.Fprintln(virtOS.Stdout(), now.Format(dateLayout))
		return nil
	})
}

var _ vos.ProcessFunc = Date

func init() {
	mustAddCmd("date", Date)
}
