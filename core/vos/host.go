package vos

import (
	"context"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Host reports on the machine the shell is running on.
type Host interface {
	Info(ctx context.Context) (*host.InfoStat, error)
	Memory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Swap(ctx context.Context) (*mem.SwapMemoryStat, error)
	Load(ctx context.Context) (*load.AvgStat, error)
	CPUs(ctx context.Context) ([]cpu.InfoStat, error)
	// CPUCount counts logical or physical cores.
	CPUCount(ctx context.Context, logical bool) (int, error)
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
	Processes(ctx context.Context) ([]ProcessInfo, error)
}

// ProcessInfo is a snapshot of a single process.
type ProcessInfo struct {
	PID     int32
	User    string
	CPU     float64
	Memory  float32
	VMS     uint64
	RSS     uint64
	Status  string
	Command string
}

// NewSystemHost reads host information from the running system.
func NewSystemHost() Host {
	return systemHost{}
}

type systemHost struct{}

func (systemHost) Info(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (systemHost) Memory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (systemHost) Swap(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

func (systemHost) Load(ctx context.Context) (*load.AvgStat, error) {
	return load.AvgWithContext(ctx)
}

func (systemHost) CPUs(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (systemHost) CPUCount(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

func (systemHost) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (systemHost) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (systemHost) Processes(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var out []ProcessInfo
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Processes can exit between listing and inspection, keep whatever
		// could be read.
		info := ProcessInfo{PID: p.Pid}
		info.User, _ = p.UsernameWithContext(ctx)
		info.CPU, _ = p.CPUPercentWithContext(ctx)
		info.Memory, _ = p.MemoryPercentWithContext(ctx)
		if memInfo, err := p.MemoryInfoWithContext(ctx); err == nil && memInfo != nil {
			info.VMS = memInfo.VMS
			info.RSS = memInfo.RSS
		}
		if status, err := p.StatusWithContext(ctx); err == nil {
			info.Status = strings.Join(status, "")
		}
		info.Command, _ = p.CmdlineWithContext(ctx)
		if info.Command == "" {
			name, _ := p.NameWithContext(ctx)
			info.Command = "[" + name + "]"
		}
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PID < out[j].PID
	})
	return out, nil
}
