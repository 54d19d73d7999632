package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// Attach a planning run id to ctx so timing lines can be correlated.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// Time logs the duration of an operation. Use as: defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	runID := RunID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.ErrorContext(ctx, "operation failed", "run_id", runID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		slog.DebugContext(ctx, "operation finished", "run_id", runID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
