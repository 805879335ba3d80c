package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrQueueFull = errors.New("telegram offer queue full")

const telegramQueueSize = 256

// Sender is the part of *tgbotapi.BotAPI the notifier uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// ChatSource lists the chats of riders who may take offers.
type ChatSource interface {
	ActiveTelegramChats(ctx context.Context) ([]int64, error)
}

// TelegramNotifier pushes open offers to every active rider's chat. Publish
// only queues the offer; Run does the sending.
type TelegramNotifier struct {
	bot   Sender
	chats ChatSource
	queue chan Event
}

func NewTelegramNotifier(bot Sender, chats ChatSource) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chats: chats, queue: make(chan Event, telegramQueueSize)}
}

func (n *TelegramNotifier) Publish(_ context.Context, e Event) error {
	if !e.Offered() {
		return nil
	}
	select {
	case n.queue <- e:
		return nil
	default:
		return fmt.Errorf("%w: offer %s dropped", ErrQueueFull, shortID(e.DeliveryID))
	}
}

// Run sends queued offers one at a time until ctx is done.
func (n *TelegramNotifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-n.queue:
			sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			if err := n.send(sendCtx, e); err != nil {
				log.Printf("[events] %v", err)
			}
			cancel()
		}
	}
}

func (n *TelegramNotifier) send(ctx context.Context, e Event) error {
	chats, err := n.chats.ActiveTelegramChats(ctx)
	if err != nil {
		return fmt.Errorf("list rider chats: %w", err)
	}
	text := fmt.Sprintf("New delivery offer %s.\nOpen the rider app to accept it.", shortID(e.DeliveryID))
	var failed int
	for _, id := range chats {
		if _, err := n.bot.Send(tgbotapi.NewMessage(id, text)); err != nil {
			failed++
			log.Printf("[events] telegram chat %d: %v", id, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("telegram: %d of %d offer messages failed", failed, len(chats))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
