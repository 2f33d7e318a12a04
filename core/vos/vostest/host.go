package vostest

import (
	"context"

	"github.com/josephlewis42/debsh/core/vos"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

const gib = 1 << 30

// FakeHost reports a fixed machine, fields can be changed before use.
type FakeHost struct {
	HostInfo     host.InfoStat
	VirtualMem   mem.VirtualMemoryStat
	SwapMem      mem.SwapMemoryStat
	LoadAvg      load.AvgStat
	CPUInfo      []cpu.InfoStat
	LogicalCPUs  int
	PhysicalCPUs int
	Parts        []disk.PartitionStat
	Usage        disk.UsageStat
	Procs        []vos.ProcessInfo

	// Err is returned from every method when set.
	Err error
}

var _ vos.Host = (*FakeHost)(nil)

// NewFakeHost creates a small Debian machine that has been up for three
// days, two hours and five minutes.
func NewFakeHost() *FakeHost {
	return &FakeHost{
		HostInfo: host.InfoStat{
			Hostname:        DefaultHostname,
			Uptime:          3*24*60*60 + 2*60*60 + 5*60,
			BootTime:        uint64(ReferenceTime.Unix()) - (3*24*60*60 + 2*60*60 + 5*60),
			Procs:           2,
			OS:              "linux",
			Platform:        "debian",
			PlatformFamily:  "debian",
			PlatformVersion: "12.5",
			KernelVersion:   "6.1.0-18-amd64",
			KernelArch:      "x86_64",
		},
		VirtualMem: mem.VirtualMemoryStat{
			Total:       8 * gib,
			Available:   6 * gib,
			Used:        2 * gib,
			UsedPercent: 25,
			Free:        5 * gib,
			Buffers:     gib / 4,
			Cached:      gib / 2,
			Shared:      gib / 8,
		},
		SwapMem: mem.SwapMemoryStat{
			Total: gib,
			Used:  0,
			Free:  gib,
		},
		LoadAvg: load.AvgStat{Load1: 0.15, Load5: 0.10, Load15: 0.05},
		CPUInfo: []cpu.InfoStat{
			{
				CPU:       0,
				VendorID:  "GenuineIntel",
				Family:    "6",
				Model:     "85",
				ModelName: "Intel(R) Xeon(R) CPU @ 2.20GHz",
				Cores:     2,
				Mhz:       2200,
			},
		},
		LogicalCPUs:  4,
		PhysicalCPUs: 2,
		Parts: []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		},
		Usage: disk.UsageStat{
			Path:        "/",
			Fstype:      "ext4",
			Total:       20 * gib,
			Free:        15 * gib,
			Used:        5 * gib,
			UsedPercent: 25,
		},
		Procs: []vos.ProcessInfo{
			{PID: 1, User: "root", CPU: 0, Memory: 0.1, VMS: 168 << 20, RSS: 12 << 20, Status: "S", Command: "/sbin/init"},
			{PID: 42, User: DefaultUser, CPU: 0.5, Memory: 0.4, VMS: 9 << 20, RSS: 5 << 20, Status: "R", Command: "-bash"},
		},
	}
}

func (h *FakeHost) Info(context.Context) (*host.InfoStat, error) {
	out := h.HostInfo
	return &out, h.Err
}

func (h *FakeHost) Memory(context.Context) (*mem.VirtualMemoryStat, error) {
	out := h.VirtualMem
	return &out, h.Err
}

func (h *FakeHost) Swap(context.Context) (*mem.SwapMemoryStat, error) {
	out := h.SwapMem
	return &out, h.Err
}

func (h *FakeHost) Load(context.Context) (*load.AvgStat, error) {
	out := h.LoadAvg
	return &out, h.Err
}

func (h *FakeHost) CPUs(context.Context) ([]cpu.InfoStat, error) {
	return append([]cpu.InfoStat(nil), h.CPUInfo...), h.Err
}

func (h *FakeHost) CPUCount(_ context.Context, logical bool) (int, error) {
	if logical {
		return h.LogicalCPUs, h.Err
	}
	return h.PhysicalCPUs, h.Err
}

func (h *FakeHost) Partitions(context.Context) ([]disk.PartitionStat, error) {
	return append([]disk.PartitionStat(nil), h.Parts...), h.Err
}

func (h *FakeHost) DiskUsage(_ context.Context, path string) (*disk.UsageStat, error) {
	out := h.Usage
	out.Path = path
	return &out, h.Err
}

func (h *FakeHost) Processes(context.Context) ([]vos.ProcessInfo, error) {
	return append([]vos.ProcessInfo(nil), h.Procs...), h.Err
}
