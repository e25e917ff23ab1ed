package notifications

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Kinds returns the supported channel kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindEmail, KindSMS, KindPush}
}

// NewChannel returns the channel for the given kind.
// The kind is trimmed and case-folded first, so " Email " selects KindEmail.
// Unsupported kinds fail with ErrUnknownChannelKind.
func NewChannel(kind string) (Channel, error) {
	switch normalizeKind(kind) {
	case KindEmail:
		return EmailChannel{}, nil
	case KindSMS:
		return SMSChannel{}, nil
	case KindPush:
		return PushChannel{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannelKind, kind)
	}
}

// MustNewChannel works like NewChannel but panics on unknown kinds.
// Intended for wiring literal kinds at program start.
func MustNewChannel(kind string) Channel {
	ch, err := NewChannel(kind)
	if err != nil {
		panic(err)
	}
	return ch
}

func normalizeKind(kind string) Kind {
	return Kind(cases.Fold().String(strings.TrimSpace(kind)))
}
