package profitability

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"minerprofit-backend/lib/chrono"
)

// refreshTimeout bounds a single scheduled refresh.
const refreshTimeout = 2 * time.Minute

// ScheduleRefresh registers a job that forces a live refresh of the store
// on every tick of spec. Jobs stop being useful once ctx is done.
func ScheduleRefresh(ctx context.Context, cron chrono.CronAPI, spec string, store *Store) error {
	return cron.Cron(spec, func() {
		if ctx.Err() != nil {
			return
		}
		refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()

		snapshot, err := store.Refresh(refreshCtx)
		if err != nil {
			slog.ErrorContext(refreshCtx, "scheduled refresh failed", "err", err)
			return
		}
		slog.InfoContext(
			refreshCtx, "scheduled refresh finished",
			"source", snapshot.Source,
			"count", len(snapshot.Miners),
		)

		err = store.persistent.Prune(refreshCtx)
		if err != nil && !errors.Is(err, ErrStoreUnavailable) {
			slog.WarnContext(refreshCtx, "failed to prune stale miners", "err", err)
		}
	})
}
