package notify

import (
	"context"
	"errors"
	"time"
)

// Event types published on the feed.
const (
	EventReservationCreated = "reservation.created"
	EventReservationUpdated = "reservation.updated"
	EventRSVPCreated        = "rsvp.created"
	EventTransactionCreated = "transaction.created"
	EventTransactionUpdated = "transaction.updated"
)

type Message struct {
	Type string    `json:"type"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

func NewMessage(eventType string, data any) Message {
	return Message{Type: eventType, Data: data, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Message) error { return nil }

// Multi publishes to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, msg Message) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
