package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"presence-lab/observability"
)

// ProcessMonitorWorker samples the directory process itself (CPU, RSS,
// status) together with the gateway counters on a fixed interval, reporting
// through the structured log. It is the only component allowed to look at
// the host process.
type ProcessMonitorWorker struct {
	log      *slog.Logger
	stats    *observability.GatewayStats
	interval time.Duration
}

func NewProcessMonitorWorker(log *slog.Logger, stats *observability.GatewayStats, interval time.Duration) *ProcessMonitorWorker {
	return &ProcessMonitorWorker{log: log, stats: stats, interval: interval}
}

func (w *ProcessMonitorWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			snapshot := w.stats.Snapshot()
			w.log.Info("process stats",
				"pid", os.Getpid(),
				"status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"active_connections", snapshot.ActiveConnections,
				"command_rate", snapshot.CommandRate,
				"frame_rate", snapshot.FrameRate,
				"frames_dropped", snapshot.FramesDropped,
			)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, string, error) {
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return mem.RSS, cpu, status, nil
}
