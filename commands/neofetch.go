package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephlewis42/debsh/core/vos"
)

var debianArt = []string{
	`       _,met$$$$$gg.          `,
	`    ,g$$$$$$$$$$$$$$$P.       `,
	`  ,g$$P"     """"Y$$.".       `,
	` ,$$P'              '$$$.     `,
	`',$$P       ,ggs.     '$$b:   `,
	"`d$$'     ,$P\"'   .    $$$    ",
	` $$P      d$'     ,    $$P    `,
	` $$:      $$.   -    ,d$$'    `,
	` $$;      Y$b._   _,d$P'      `,
	" Y$$.    `.`\"Y$$$$P\"'        ",
	" `$$b      \"-.__              ",
	"  `Y$$b                       ",
	"   `Y$$.                      ",
	"     `$$b.                    ",
}

// Neofetch shows the Debian logo next to a summary of the system.
func Neofetch(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "neofetch",
		Short: "Show system information next to the distribution logo.",
	}

	return cmd.RunE(virtOS, func() error {
		host := virtOS.Host()
		info, err := host.Info(ctx)
		if err != nil {
			return err
		}

		cpuName := "unknown"
		if cpus, err := host.CPUs(ctx); err == nil && len(cpus) > 0 {
			cpuName = cpus[0].ModelName
		}

		memory := "Unknown"
		if m, err := host.Memory(ctx); err == nil {
			memory = fmt.Sprintf("%.1fGB", float64(m.Total)/(1<<30))
		}

		shell := "unknown"
		if s := virtOS.Getenv(vos.EnvShell); s != "" {
			shell = filepath.Base(s)
		}

		details := []string{
			sessionColor(virtOS, ColorBoldGreen, strings.ToLower(virtOS.Username()+"@"+virtOS.Hostname())),
			fmt.Sprintf("OS: %s %s", titleCase.String(info.Platform), info.PlatformVersion),
			fmt.Sprintf("Kernel: %s", info.KernelVersion),
			fmt.Sprintf("Uptime: %s", strings.TrimPrefix(formatUptime(time.Duration(info.Uptime)*time.Second), "up ")),
			fmt.Sprintf("Shell: %s", shell),
			fmt.Sprintf("CPU: %s", cpuName),
			fmt.Sprintf("Memory: %s", memory),
		}

		logo := make([]string, len(debianArt))
		for i, line := range debianArt {
			logo[i] = sessionColor(virtOS, ColorRed, line)
		}

		out := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().PaddingRight(1).Render(strings.Join(logo, "\n")),
			strings.Join(details, "\n"))

		for _, line := range strings.Split(out, "\n") {
			fmt.Fprintln(virtOS.Stdout(), strings.TrimRight(line, " "))
		}
		return nil
	})
}

var _ vos.ProcessFunc = Neofetch

func init() {
	mustAddCmd("neofetch", Neofetch)
}
