package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephlewis42/debsh/core/vos"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.Und)

// Uname prints system information, everything if no field is picked.
func Uname(ctx context.Context, virtOS vos.VOS) error {
	cmd := &SimpleCommand{
		Use:   "uname [OPTION]...",
		Short: "Print certain system information.",
	}

	opts := cmd.Flags()
	showAll := opts.BoolLong("all", 'a', "print all information")
	showKernelName := opts.BoolLong("kernel-name", 's', "print the kernel name")
	showNodename := opts.BoolLong("nodename", 'n', "print the network node name")
	showRelease := opts.BoolLong("kernel-release", 'r', "print the kernel release")
	showVersion := opts.BoolLong("kernel-version", 'v', "print the kernel version")
	showMachine := opts.BoolLong("machine", 'm', "print the machine hardware name")

	return cmd.RunE(virtOS, func() error {
		info, err := virtOS.Host().Info(ctx)
		if err != nil {
			return err
		}

		version := strings.TrimSpace(fmt.Sprintf("#1 SMP %s %s", titleCase.String(info.Platform), info.PlatformVersion))
		fields := []struct {
			flag     *bool
			property string
		}{
			{showKernelName, titleCase.String(info.OS)},
			{showNodename, virtOS.Hostname()},
			{showRelease, info.KernelVersion},
			{showVersion, version},
			{showMachine, info.KernelArch},
		}

		all := *showAll
		if !all {
			all = true
			for _, f := range fields {
				if *f.flag {
					all = false
				}
			}
		}

		var out []string
		for _, f := range fields {
			if all || *f.flag {
				out = append(out, f.property)
			}
		}

		fmt.Fprintln(virtOS.Stdout(), strings.Join(out, " "))
		return nil
	})
}

var _ vos.ProcessFunc = Uname

func init() {
	mustAddCmd("uname", Uname)
}
