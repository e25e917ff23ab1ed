// Command notifydemo registers a roster of subscribers and broadcasts one
// message to them, printing one line per subscriber on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
	"github.com/dmitrymomot/notifykit/pkg/roster"
)

func main() {
	var envFile string
	flag.StringVar(&envFile, "env-file", "", "path to a .env file (default ./.env if present)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := newLogger(cfg, os.Stderr)
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, stdout io.Writer) error {
	r := roster.Default()
	if cfg.RosterPath != "" {
		loaded, err := roster.LoadFile(cfg.RosterPath)
		if err != nil {
			return err
		}
		r = loaded
	}

	subs, err := r.Subscribers(cfg.Channel)
	if err != nil {
		return err
	}

	d := notifications.NewDispatcher(
		notifications.WithOutput(stdout),
		notifications.WithLogger(log),
	)
	for _, s := range subs {
		d.AddSubscriber(s)
		log.Debug("registered subscriber",
			logger.SubscriberID(s.ID()),
			logger.Channel(s.Channel().Kind()),
		)
	}

	ctx = logger.WithBroadcastID(ctx, uuid.NewString())
	return d.NotifyAll(ctx, cfg.Message)
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(w),
		logger.WithBroadcastIDExtractor(),
	}
	if lvl, ok := cfg.Level(); ok {
		opts = append(opts, logger.WithLevel(lvl))
	}
	if f := strings.ToLower(strings.TrimSpace(cfg.LogFormat)); f != "" {
		opts = append(opts, logger.WithFormat(logger.Format(f)))
	}
	return logger.New(opts...)
}
