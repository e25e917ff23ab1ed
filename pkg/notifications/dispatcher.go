package notifications

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Dispatcher is the subject side of the observer relationship. It keeps
// observers in insertion order and broadcasts messages to all of them.
//
// Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	observers []Observer
	out       io.Writer
	logger    *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithOutput sets the sink notification lines are written to.
// Nil writers are ignored.
func WithOutput(w io.Writer) DispatcherOption {
	return func(d *Dispatcher) {
		if w != nil {
			d.out = w
		}
	}
}

// WithLogger sets the logger for the Dispatcher.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher writing to stdout.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		out:    os.Stdout,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.logger = d.logger.With(logger.Component("dispatcher"))
	return d
}

// AddSubscriber appends o to the observer list. Duplicates are kept and
// notified once per registration.
func (d *Dispatcher) AddSubscriber(o Observer) {
	if o == nil {
		d.logger.Warn("ignoring nil subscriber")
		return
	}
	d.observers = append(d.observers, o)
	d.logger.Debug("subscriber added",
		logger.Subscriber(o),
		logger.SubscriberCount(len(d.observers)),
	)
}

// RemoveSubscriber removes the first registration of o.
// It reports whether o was registered. Observers whose dynamic type is not
// comparable (structs holding slices, maps or funcs) can never match; register
// them by pointer to make them removable.
func (d *Dispatcher) RemoveSubscriber(o Observer) bool {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return false
	}
	for i, cur := range d.observers {
		if !reflect.TypeOf(cur).Comparable() || cur != o {
			continue
		}
		d.observers = append(d.observers[:i:i], d.observers[i+1:]...)
		d.logger.Debug("subscriber removed",
			logger.Subscriber(o),
			logger.SubscriberCount(len(d.observers)),
		)
		return true
	}
	return false
}

// Len returns the number of registrations.
func (d *Dispatcher) Len() int {
	return len(d.observers)
}

// Subscribers returns a copy of the observer list in insertion order.
func (d *Dispatcher) Subscribers() []Observer {
	return append([]Observer(nil), d.observers...)
}

// NotifyAll writes one line per registration, in insertion order.
// An empty dispatcher writes nothing. The only failure is a write error on
// the output, which stops the broadcast and is returned wrapped in
// ErrOutputFailed.
func (d *Dispatcher) NotifyAll(ctx context.Context, message string) error {
	d.logger.LogAttrs(ctx, slog.LevelInfo, "notifying subscribers",
		logger.SubscriberCount(len(d.observers)),
		logger.Message(message),
	)

	for i, o := range d.observers {
		line := o.Update(message)
		if _, err := io.WriteString(d.out, line+"\n"); err != nil {
			d.logger.LogAttrs(ctx, slog.LevelError, "failed to write notification",
				logger.Subscriber(o),
				slog.Int("position", i),
				logger.Error(err),
			)
			return fmt.Errorf("%w: %w", ErrOutputFailed, err)
		}
	}

	return nil
}
