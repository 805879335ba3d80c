package events

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
)

type recordPub struct {
	got []Event
	err error
}

func (r *recordPub) Publish(_ context.Context, e Event) error {
	r.got = append(r.got, e)
	return r.err
}

func TestMulti_PublishesToAllAndJoinsErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	a, b := &recordPub{}, &recordPub{err: boom}
	err := Multi{a, b, Nop{}}.Publish(context.Background(), Event{Type: "delivery.offer", DeliveryID: "d1"})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("fan-out a=%d b=%d", len(a.got), len(b.got))
	}
}

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	fail int64
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := c.(tgbotapi.MessageConfig)
	if m.ChatID == f.fail {
		return tgbotapi.Message{}, errors.New("blocked by user")
	}
	f.sent = append(f.sent, m)
	return tgbotapi.Message{}, nil
}

type chats []int64

func (c chats) ActiveTelegramChats(context.Context) ([]int64, error) { return c, nil }

func TestTelegramNotifier_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fail     int64
		wantSent int
		wantErr  bool
	}{
		{name: "offer goes to every chat", wantSent: 3},
		{name: "one chat failing", fail: 20, wantSent: 2, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			bot := &fakeBot{fail: tc.fail}
			n := NewTelegramNotifier(bot, chats{10, 20, 30})
			err := n.send(context.Background(), Event{Type: "delivery.offer", DeliveryID: "0123456789abcdef", Status: "offered"})
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
			if len(bot.sent) != tc.wantSent {
				t.Fatalf("sent=%d want %d", len(bot.sent), tc.wantSent)
			}
			for _, m := range bot.sent {
				if !strings.Contains(m.Text, "01234567") {
					t.Fatalf("message %q lacks short id", m.Text)
				}
			}
		})
	}
}

// gateBot blocks every Send until release is closed.
type gateBot struct {
	fakeBot
	release chan struct{}
}

func (g *gateBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	<-g.release
	return g.fakeBot.Send(c)
}

func (g *gateBot) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sent)
}

func TestTelegramNotifier_PublishDoesNotWaitForTelegram(t *testing.T) {
	t.Parallel()
	bot := &gateBot{release: make(chan struct{})}
	n := NewTelegramNotifier(bot, chats{10, 20})

	if err := n.Publish(context.Background(), Event{DeliveryID: "d1", Status: "assigned"}); err != nil || len(n.queue) != 0 {
		t.Fatalf("non offer queued: err=%v len=%d", err, len(n.queue))
	}

	done := make(chan error, 1)
	go func() { done <- n.Publish(context.Background(), Event{DeliveryID: "d1", Status: "offered"}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("publish: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("publish blocked on telegram")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Run(ctx)
	close(bot.release)

	deadline := time.Now().Add(3 * time.Second)
	for bot.count() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("sent=%d, want 2", bot.count())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestTelegramNotifier_QueueFull(t *testing.T) {
	t.Parallel()
	n := &TelegramNotifier{bot: &fakeBot{}, chats: chats{10}, queue: make(chan Event, 1)}
	offer := Event{DeliveryID: "d1", Status: "offered"}
	if err := n.Publish(context.Background(), offer); err != nil {
		t.Fatal(err)
	}
	if err := n.Publish(context.Background(), offer); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err=%v, want ErrQueueFull", err)
	}
}

func TestRedisBus_PublishSubscribe(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()
	bus := NewRedisBus(rdb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	offers, err := bus.Subscribe(ctx, OffersChannel)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	one, err := bus.Subscribe(ctx, Channel("d-42"))
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := bus.Publish(ctx, Event{Type: "delivery.offer", DeliveryID: "d-42", Status: "offered"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	for _, ch := range []<-chan Event{one, offers} {
		select {
		case e := <-ch:
			if e.DeliveryID != "d-42" {
				t.Fatalf("got %+v", e)
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for event")
		}
	}
}
