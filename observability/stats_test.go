package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Snapshot_Tracks_Connections_And_Drops(t *testing.T) {
	req := require.New(t)
	stats := NewGatewayStats(slog.Default())

	stats.IncrConnectionsOpened()
	stats.IncrConnectionsOpened()
	stats.IncrConnectionsClosed()
	stats.IncrFramesDropped()
	stats.IncrCommandsReceived()
	stats.IncrFramesSent()

	snapshot := stats.Snapshot()
	req.Equal(uint64(1), snapshot.ActiveConnections)
	req.Equal(uint64(1), snapshot.FramesDropped)

	req.Equal(snapshot, stats.GetLatest())
}
