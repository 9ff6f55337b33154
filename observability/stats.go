// Package observability aggregates gateway-level telemetry. Counters are
// incremented from hot paths with atomics; the periodic snapshot derives
// rates and attaches Go runtime figures for the process monitor to report.
package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// StatsSnapshot is the aggregated view handed to the process monitor.
type StatsSnapshot struct {
	ActiveConnections uint64  `json:"active_connections"`
	CommandRate       float64 `json:"command_rate"`
	FrameRate         float64 `json:"frame_rate"`
	FramesDropped     uint64  `json:"frames_dropped"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
}

// GatewayStats collects connection and frame counters from the WebSocket
// gateway.
type GatewayStats struct {
	log    *slog.Logger
	mu     sync.RWMutex
	latest StatsSnapshot

	ConnectionsOpened uint64
	ConnectionsClosed uint64
	CommandsReceived  uint64
	FramesSent        uint64
	FramesDropped     uint64
	LastCheck         time.Time

	lastCommands uint64
	lastFrames   uint64
}

func NewGatewayStats(log *slog.Logger) *GatewayStats {
	return &GatewayStats{log: log, LastCheck: time.Now()}
}

func (gs *GatewayStats) IncrConnectionsOpened() {
	atomic.AddUint64(&gs.ConnectionsOpened, 1)
}

func (gs *GatewayStats) IncrConnectionsClosed() {
	atomic.AddUint64(&gs.ConnectionsClosed, 1)
}

func (gs *GatewayStats) IncrCommandsReceived() {
	atomic.AddUint64(&gs.CommandsReceived, 1)
}

func (gs *GatewayStats) IncrFramesSent() {
	atomic.AddUint64(&gs.FramesSent, 1)
}

func (gs *GatewayStats) IncrFramesDropped() {
	atomic.AddUint64(&gs.FramesDropped, 1)
}

// Snapshot recomputes rates since the previous call and returns the latest
// aggregated view.
func (gs *GatewayStats) Snapshot() StatsSnapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	now := time.Now()
	duration := now.Sub(gs.LastCheck).Seconds()

	commands := atomic.LoadUint64(&gs.CommandsReceived)
	frames := atomic.LoadUint64(&gs.FramesSent)
	if duration > 0 {
		gs.latest.CommandRate = float64(commands-gs.lastCommands) / duration
		gs.latest.FrameRate = float64(frames-gs.lastFrames) / duration
	}
	gs.lastCommands = commands
	gs.lastFrames = frames
	gs.LastCheck = now

	opened := atomic.LoadUint64(&gs.ConnectionsOpened)
	closed := atomic.LoadUint64(&gs.ConnectionsClosed)
	if opened >= closed {
		gs.latest.ActiveConnections = opened - closed
	}
	gs.latest.FramesDropped = atomic.LoadUint64(&gs.FramesDropped)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	gs.latest.AllocMemMb = m.Alloc / 1024 / 1024
	gs.latest.NumGC = m.NumGC

	return gs.latest
}

// GetLatest returns the last computed snapshot without recomputing rates.
func (gs *GatewayStats) GetLatest() StatsSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.latest
}
