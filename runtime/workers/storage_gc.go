package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// StorageGCWorker runs Badger's value-log garbage collection periodically.
// Badger never reclaims value-log space on its own; without this the store
// grows on every snapshot rewrite.
type StorageGCWorker struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewStorageGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration) *StorageGCWorker {
	return &StorageGCWorker{db: db, log: log, interval: interval}
}

func (w *StorageGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// One pass per tick; 0.5 only rewrites files at least half stale.
			err := w.db.RunValueLogGC(0.5)
			switch {
			case err == nil:
				w.log.Debug("value log file collected")
			case stderrors.Is(err, badger.ErrNoRewrite):
				// Nothing worth rewriting this round.
			default:
				w.log.Warn("value log GC failed", "err", err)
			}
		}
	}
}
