package notifications

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultEmailDomain = "example.com"
	defaultPhone       = "0000000000"
)

// Observer receives broadcast messages from a Dispatcher.
// Update returns the line rendered for the message.
type Observer interface {
	Update(message string) string
}

// Subscriber is a notification recipient bound to a single channel.
// It is immutable after construction.
type Subscriber struct {
	id      string
	name    string
	email   string
	phone   string
	channel Channel
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// WithEmail sets the subscriber email address.
func WithEmail(email string) SubscriberOption {
	return func(s *Subscriber) {
		s.email = email
	}
}

// WithPhone sets the subscriber phone number.
func WithPhone(phone string) SubscriberOption {
	return func(s *Subscriber) {
		s.phone = phone
	}
}

// WithID overrides the generated subscriber ID. Empty values are ignored.
func WithID(id string) SubscriberOption {
	return func(s *Subscriber) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSubscriber creates a subscriber delivering through ch.
// A nil channel is a setup error and fails with ErrMissingChannel.
func NewSubscriber(name string, ch Channel, opts ...SubscriberOption) (*Subscriber, error) {
	if ch == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingChannel, name)
	}

	s := &Subscriber{
		id:      uuid.NewString(),
		name:    name,
		channel: ch,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// ID returns the subscriber identifier.
func (s *Subscriber) ID() string { return s.id }

// Name returns the subscriber name.
func (s *Subscriber) Name() string { return s.name }

// Email returns the email address as given, without fallbacks.
func (s *Subscriber) Email() string { return s.email }

// Phone returns the phone number as given, without fallbacks.
func (s *Subscriber) Phone() string { return s.phone }

// Channel returns the assigned channel.
func (s *Subscriber) Channel() Channel {
	return s.channel
}

// Recipient returns the contact data handed to the channel.
// Missing email falls back to <lowercased name>@example.com and missing phone
// to a zero number; explicit values are passed through untouched.
func (s *Subscriber) Recipient() Recipient {
	r := Recipient{
		Name:  s.name,
		Email: s.email,
		Phone: s.phone,
	}
	if r.Email == "" {
		r.Email = cases.Lower(language.Und).String(s.name) + "@" + defaultEmailDomain
	}
	if r.Phone == "" {
		r.Phone = defaultPhone
	}
	return r
}

// Update renders message through the subscriber's channel.
func (s *Subscriber) Update(message string) string {
	return s.channel.Format(s.Recipient(), message)
}

func (s *Subscriber) String() string {
	return fmt.Sprintf("Subscriber(%s, channel=%s)", s.name, s.channel.Kind())
}
