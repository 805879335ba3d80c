package events

import (
	"context"
	"errors"
	"time"
)

// Event is a delivery change as seen by subscribers. It never carries codes.
type Event struct {
	Type       string    `json:"type"`
	DeliveryID string    `json:"delivery_id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	RiderID    string    `json:"rider_id,omitempty"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

// Offered reports whether the delivery is open for riders after this event.
func (e Event) Offered() bool { return e.Status == "offered" }

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi publishes to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Channel is the pub/sub channel for one delivery.
func Channel(deliveryID string) string { return "deliveries:" + deliveryID }

// OffersChannel carries every event that leaves a delivery open for riders.
const OffersChannel = "deliveries:offers"
