package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisBus fans delivery events out over Redis pub/sub so every replica's
// SSE streams see them.
type RedisBus struct {
	rdb *redis.Client
}

func NewRedisBus(rdb *redis.Client) *RedisBus { return &RedisBus{rdb: rdb} }

func (b *RedisBus) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, Channel(e.DeliveryID), payload).Err(); err != nil {
		return err
	}
	if e.Offered() {
		return b.rdb.Publish(ctx, OffersChannel, payload).Err()
	}
	return nil
}

// Subscribe streams events from channel until ctx is done. The returned
// channel is closed when the subscription ends.
func (b *RedisBus) Subscribe(ctx context.Context, channel string) (<-chan Event, error) {
	sub := b.rdb.Subscribe(ctx, channel)
	// Wait for the confirmation so a bad connection fails here, not silently.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}
	out := make(chan Event)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var e Event
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					log.Printf("[events] drop malformed message on %s: %v", channel, err)
					continue
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
