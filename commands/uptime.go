package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/josephlewis42/debsh/core/vos"
)

// Uptime prints how long the host has been running.
func Uptime(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "uptime",
		Short: "Tell how long the system has been running.",
	}

	return cmd.RunE(virtOS, func() error {
		info, err := virtOS.Host().Info(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(virtOS.Stdout(), formatUptime(time.Duration(info.Uptime)*time.Second))
		return nil
	})
}

// formatUptime renders d as "up 1 day 2 hours 5 minutes", skipping zero
// days and hours. Minutes are always shown when nothing else is.
func formatUptime(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, plural(minutes, "minute"))
	}

	return "up " + strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

var _ vos.ProcessFunc = Uptime

func init() {
	mustAddCmd("uptime", Uptime)
}
