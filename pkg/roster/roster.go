// Package roster loads subscriber lists from YAML and turns them into
// notification subscribers.
//
// A roster file looks like:
//
//	subscribers:
//	  - name: Emily
//	    email: emily@gmail.com
//	    channel: email
//	  - name: Bob
//	    phone: "+5215550002222"
//	    channel: sms
//
// Entries without a channel use the default kind passed to Subscribers.
package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

var (
	ErrReadRoster  = errors.New("failed to read roster")
	ErrParseRoster = errors.New("failed to parse roster")
	ErrEmptyName   = errors.New("roster entry has no name")
)

// Entry describes one subscriber.
type Entry struct {
	ID      string `yaml:"id,omitempty"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email,omitempty"`
	Phone   string `yaml:"phone,omitempty"`
	Channel string `yaml:"channel,omitempty"`
}

// Roster is an ordered list of entries. Order is registration order.
type Roster struct {
	Entries []Entry `yaml:"subscribers"`
}

// Default returns the built-in demo roster.
func Default() *Roster {
	return &Roster{
		Entries: []Entry{
			{Name: "Emily", Email: "emily@gmail.com"},
			{Name: "Carlos", Email: "carlos@gmail.com"},
		},
	}
}

// Parse decodes a roster from r. An empty document yields an empty roster.
func Parse(r io.Reader) (*Roster, error) {
	var ro Roster
	if err := yaml.NewDecoder(r).Decode(&ro); err != nil {
		if errors.Is(err, io.EOF) {
			return &Roster{}, nil
		}
		return nil, errors.Join(ErrParseRoster, err)
	}
	return &ro, nil
}

// LoadFile reads and parses the roster at path.
func LoadFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadRoster, err)
	}
	defer f.Close()

	return Parse(f)
}

// Subscribers builds one subscriber per entry, in order. Channels are
// resolved up front, so an unknown kind fails here rather than at broadcast.
func (r *Roster) Subscribers(defaultKind string) ([]*notifications.Subscriber, error) {
	out := make([]*notifications.Subscriber, 0, len(r.Entries))
	for i, e := range r.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}

		kind := e.Channel
		if strings.TrimSpace(kind) == "" {
			kind = defaultKind
		}
		ch, err := notifications.NewChannel(kind)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}

		s, err := notifications.NewSubscriber(e.Name, ch,
			notifications.WithID(e.ID),
			notifications.WithEmail(e.Email),
			notifications.WithPhone(e.Phone),
		)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}
