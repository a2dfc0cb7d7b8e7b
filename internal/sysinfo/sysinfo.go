// Package sysinfo samples host and process health for the status surface.
package sysinfo

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Snapshot is a point-in-time view of host and process resource usage.
type Snapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemPercent    float64 `json:"mem_percent"`
	MemUsedMB     float64 `json:"mem_used_mb"`
	MemTotalMB    float64 `json:"mem_total_mb"`
	ProcessRSSMB  float64 `json:"process_rss_mb"`
	Goroutines    int     `json:"goroutines"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Collector samples the local host. The zero value is not usable; use New.
type Collector struct {
	proc    *process.Process
	started time.Time
}

// New creates a collector bound to the current process.
func New() (*Collector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Collector{proc: proc, started: time.Now()}, nil
}

// Collect takes one sample. Individual probe failures leave the affected
// fields at zero rather than failing the whole snapshot.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	snap := Snapshot{
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: time.Since(c.started).Seconds(),
	}

	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snap.MemPercent = vm.UsedPercent
		snap.MemUsedMB = float64(vm.Used) / (1024 * 1024)
		snap.MemTotalMB = float64(vm.Total) / (1024 * 1024)
	}

	if mi, err := c.proc.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		snap.ProcessRSSMB = float64(mi.RSS) / (1024 * 1024)
	}

	return snap
}
