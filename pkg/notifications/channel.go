package notifications

import "fmt"

// Kind identifies a delivery channel.
type Kind string

const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
	KindPush  Kind = "push"
)

// Recipient is the identity data a channel needs to render a line.
type Recipient struct {
	Name  string
	Email string
	Phone string
}

// Channel renders a notification message for a recipient.
// Implementations are stateless and never fail.
type Channel interface {
	Kind() Kind
	Format(r Recipient, message string) string
}

// EmailChannel renders messages as outgoing emails.
type EmailChannel struct{}

func (EmailChannel) Kind() Kind { return KindEmail }

func (EmailChannel) Format(r Recipient, message string) string {
	return fmt.Sprintf("Enviando EMAIL a %s (%s): %s", r.Name, r.Email, message)
}

// SMSChannel renders messages as outgoing text messages.
type SMSChannel struct{}

func (SMSChannel) Kind() Kind { return KindSMS }

func (SMSChannel) Format(r Recipient, message string) string {
	return fmt.Sprintf("Enviando SMS a %s (%s): %s", r.Name, r.Phone, message)
}

// PushChannel renders messages as push notifications. Push targets the
// recipient by name, so no contact field is printed.
type PushChannel struct{}

func (PushChannel) Kind() Kind { return KindPush }

func (PushChannel) Format(r Recipient, message string) string {
	return fmt.Sprintf("Enviando PUSH a %s: %s", r.Name, message)
}
