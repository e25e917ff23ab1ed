// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so key names stay consistent across packages.
//
// Loggers write to stderr by default. Development environments get text
// output at debug level; staging and production get JSON at info level.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "notifydemo"),
//	    logger.WithBroadcastIDExtractor(),
//	)
//
//	ctx := logger.WithBroadcastID(context.Background(), id)
//	log.InfoContext(ctx, "notifying subscribers", logger.SubscriberCount(2))
//
// Records logged with ctx carry broadcast_id automatically.
package logger
