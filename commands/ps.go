package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

const psRow = "%-8s %5s %4s %4s %6s %5s %-4s %s\n"

// Ps lists the processes running on the host in the BSD "aux" layout.
func Ps(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "ps [options]",
		Short: "Report a snapshot of the current processes.",
	}

	// Accepted for familiarity, every process is always listed.
	cmd.Flags().Bool('a', "show processes of all users")
	cmd.Flags().Bool('u', "user-oriented format")
	cmd.Flags().Bool('x', "show processes without a terminal")

	return cmd.RunE(virtOS, func() error {
		procs, err := virtOS.Host().Processes(ctx)
		if err != nil {
			return err
		}

		w := virtOS.Stdout()
		fmt.Fprintf(w, psRow, "USER", "PID", "%CPU", "%MEM", "VSZ", "RSS", "STAT", "COMMAND")
		for _, p := range procs {
			user := p.User
			if user == "" {
				user = "?"
			}
			fmt.Fprintf(w, psRow,
				user,
				fmt.Sprint(p.PID),
				fmt.Sprintf("%.1f", p.CPU),
				fmt.Sprintf("%.1f", p.Memory),
				fmt.Sprint(p.VMS/1024),
				fmt.Sprint(p.RSS/1024),
				p.Status,
				p.Command)
		}

		return nil
	})
}

var _ vos.ProcessFunc = Ps

func init() {
	mustAddCmd("ps", Ps)
}
