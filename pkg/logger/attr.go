package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Subscriber records a subscriber under the key "subscriber".
// Values implementing fmt.Stringer are rendered with String, anything else by
// its dynamic type so mocks and large structs stay out of the log line.
func Subscriber(s any) slog.Attr {
	switch v := s.(type) {
	case nil:
		return slog.Attr{}
	case fmt.Stringer:
		return slog.String("subscriber", v.String())
	default:
		return slog.String("subscriber", fmt.Sprintf("%T", v))
	}
}

// SubscriberID records the subscriber identifier under the key "subscriber_id".
func SubscriberID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("subscriber_id", id)
}

// SubscriberCount records the number of subscribers under the key "subscriber_count".
func SubscriberCount(n int) slog.Attr {
	return slog.Int("subscriber_count", n)
}

// Channel records the channel kind under the key "channel".
func Channel(kind any) slog.Attr {
	return slog.String("channel", fmt.Sprint(kind))
}

// Message records a broadcast message under the key "message".
func Message(msg string) slog.Attr {
	return slog.String("message", msg)
}

// BroadcastID records the broadcast identifier under the key "broadcast_id".
func BroadcastID(id string) slog.Attr {
	return slog.String("broadcast_id", id)
}
