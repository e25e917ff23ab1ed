package notifications

import "errors"

var (
	// ErrUnknownChannelKind is returned by NewChannel for kinds outside Kinds().
	ErrUnknownChannelKind = errors.New("notifications: unknown channel kind")

	// ErrMissingChannel is returned by NewSubscriber when no channel is assigned.
	ErrMissingChannel = errors.New("notifications: subscriber has no channel")

	// ErrOutputFailed wraps a write failure on the dispatcher output.
	ErrOutputFailed = errors.New("notifications: failed to write notification")
)
