// Package notifications broadcasts text messages to a list of subscribers,
// rendering one line per subscriber in the style of its delivery channel.
//
// The package pairs two small pieces:
//
//   - Channel: a stateless formatter (email, SMS or push) chosen by kind
//     through NewChannel.
//   - Dispatcher: the subject holding observers in insertion order and
//     writing their rendered lines to an io.Writer on NotifyAll.
//
// Nothing is actually sent. Lines go to the dispatcher output, stdout by
// default.
//
// # Basic Usage
//
//	ch, err := notifications.NewChannel("email")
//	if err != nil {
//	    return err
//	}
//
//	emily, err := notifications.NewSubscriber("Emily", ch,
//	    notifications.WithEmail("emily@gmail.com"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	d := notifications.NewDispatcher()
//	d.AddSubscriber(emily)
//
//	// Enviando EMAIL a Emily (emily@gmail.com): hello
//	err = d.NotifyAll(ctx, "hello")
//
// # Adding a Channel
//
// A new channel is a type implementing Channel plus one branch in
// NewChannel. Dispatcher and Subscriber do not change.
//
// # Ordering
//
// Observers are notified sequentially in registration order. Duplicate
// registrations are allowed and produce one line each.
package notifications
