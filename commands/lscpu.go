package commands

import (
	"context"
	"fmt"

	"github.com/josephlewis42/debsh/core/vos"
)

// Lscpu describes the CPU architecture of the host.
func Lscpu(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "lscpu [OPTION...]",
		Short: "Display information about the CPU architecture.",
	}

	return cmd.RunE(virtOS, func() error {
		host := virtOS.Host()

		info, err := host.Info(ctx)
		if err != nil {
			return err
		}
		cpus, err := host.CPUs(ctx)
		if err != nil {
			return err
		}
		logical, err := host.CPUCount(ctx, true)
		if err != nil {
			return err
		}
		physical, err := host.CPUCount(ctx, false)
		if err != nil {
			return err
		}

		vendor, model, mhz := "unknown", "unknown", 0.0
		if len(cpus) > 0 {
			vendor, model, mhz = cpus[0].VendorID, cpus[0].ModelName, cpus[0].Mhz
		}

		threadsPerCore := 1
		if physical > 0 {
			threadsPerCore = max(1, logical/physical)
		}

		w := virtOS.Stdout()
		for _, row := range []struct {
			label string
			value interface{}
		}{
			{"Architecture:", info.KernelArch},
			{"CPU op-mode(s):", "32-bit, 64-bit"},
			{"Vendor ID:", vendor},
			{"CPU(s):", logical},
			{"Model name:", model},
			{"CPU cores:", physical},
			{"Threads per core:", threadsPerCore},
			{"CPU MHz:", fmt.Sprintf("%.3f", mhz)},
		} {
			fmt.Fprintf(w, "%-20s %v\n", row.label, row.value)
		}

		return nil
	})
}

var _ vos.ProcessFunc = Lscpu

func init() {
	mustAddCmd("lscpu", Lscpu)
}
