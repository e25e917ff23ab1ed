package logger

import (
	"context"
	"log/slog"
)

type broadcastIDKey struct{}

// WithBroadcastID stores a broadcast identifier in ctx. Loggers built with
// WithBroadcastIDExtractor attach it to every record logged with ctx.
func WithBroadcastID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, broadcastIDKey{}, id)
}

// BroadcastIDFromContext returns the broadcast identifier stored in ctx.
func BroadcastIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(broadcastIDKey{}).(string)
	return id, ok && id != ""
}

// WithBroadcastIDExtractor injects the context broadcast ID into log records.
func WithBroadcastIDExtractor() Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		id, ok := BroadcastIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return BroadcastID(id), true
	})
}
