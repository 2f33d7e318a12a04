package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephlewis42/debsh/core/vos"
)

var lshwLabel = lipgloss.NewStyle().Width(16)

type lshwSection struct {
	title  string
	fields [][2]string
}

// Lshw prints a summary of the hardware of the host.
func Lshw(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "lshw",
		Short: "List hardware.",
	}

	return cmd.RunE(virtOS, func() error {
		host := virtOS.Host()
		info, err := host.Info(ctx)
		if err != nil {
			return err
		}

		sections := []lshwSection{
			{"System", [][2]string{
				{"Node Name:", virtOS.Hostname()},
				{"OS:", titleCase.String(info.OS) + " " + info.KernelVersion},
				{"Architecture:", info.KernelArch},
			}},
		}

		if cpus, err := host.CPUs(ctx); err == nil && len(cpus) > 0 {
			cores, _ := host.CPUCount(ctx, true)
			sections = append(sections, lshwSection{"Processor", [][2]string{
				{"product:", cpus[0].ModelName},
				{"vendor:", cpus[0].VendorID},
				{"capacity:", fmt.Sprintf("%.0fMHz", cpus[0].Mhz)},
				{"cores:", fmt.Sprint(cores)},
			}})
		}

		if memory, err := host.Memory(ctx); err == nil {
			sections = append(sections, lshwSection{"Memory", [][2]string{
				{"size:", fmt.Sprintf("%d MB", memory.Total/mib)},
			}})
		}

		w := virtOS.Stdout()
		rule := strings.Repeat("-", 60)
		fmt.Fprintln(w, sessionColor(virtOS, ColorYellow, "HARDWARE INFORMATION"))
		fmt.Fprintln(w, rule)
		for i, section := range sections {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, sessionColor(virtOS, ColorCyan, section.title+":"))
			for _, field := range section.fields {
				label := lshwLabel.Render(field[0])
				fmt.Fprintf(w, "  %s%s\n", sessionColor(virtOS, ColorWhite, label), field[1])
			}
		}
		fmt.Fprintln(w, rule)

		return nil
	})
}

var _ vos.ProcessFunc = Lshw

func init() {
	mustAddCmd("lshw", Lshw)
}
