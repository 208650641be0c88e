package notify

import (
	"context"
	"fmt"
	"strings"

	"raffle-manager-backend/internal/common/logger"
	"raffle-manager-backend/internal/features/raffle/models"
	raffleservice "raffle-manager-backend/internal/features/raffle/service"
)

// Sender delivers a text message to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type RaffleGetter interface {
	GetRaffleByID(ctx context.Context, id string) (*models.Raffle, error)
}

// Notifier announces draw results to admin chats.
type Notifier struct {
	sender  Sender
	raffles RaffleGetter
	chats   []int64
}

func NewNotifier(sender Sender, raffles RaffleGetter, chats []int64) *Notifier {
	return &Notifier{sender: sender, raffles: raffles, chats: chats}
}

// Run forwards hub events until ctx is done or the subscription closes.
func (n *Notifier) Run(ctx context.Context, hub *raffleservice.Hub) {
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	logger.Info().Int("chats", len(n.chats)).Msg("Draw notifier started")
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-sub.Events():
			if !ok {
				return
			}
			n.handle(ctx, evt)
		}
	}
}

func (n *Notifier) handle(ctx context.Context, evt raffleservice.Event) {
	text, ok := n.message(ctx, evt)
	if !ok {
		return
	}

	for _, chatID := range n.chats {
		if err := n.sender.SendMessage(ctx, chatID, text); err != nil {
			logger.Warn().
				Err(err).
				Int64("chat_id", chatID).
				Str("raffle_id", evt.RaffleID).
				Str("event", evt.Type).
				Msg("Failed to send draw notification")
		}
	}
}

func (n *Notifier) message(ctx context.Context, evt raffleservice.Event) (string, bool) {
	switch evt.Type {
	case raffleservice.EventPrizeDrawn:
		prize, ok := evt.Data.(models.Prize)
		if !ok || !prize.IsResolved() {
			return "", false
		}
		name := evt.RaffleID
		if r, err := n.raffles.GetRaffleByID(ctx, evt.RaffleID); err == nil {
			name = r.Name
			// events carry no phone numbers; admin chats read them from the store
			if stored, err := r.Prize(prize.Order); err == nil && stored.IsResolved() {
				prize = *stored
			}
		}
		winner := prize.WinnerName
		if prize.WinnerPhone != "" {
			winner += ", " + prize.WinnerPhone
		}
		return fmt.Sprintf("🎉 %s\nPrize #%d: %s\nWinning number: %d\nWinner: %s",
			name,
			prize.Order,
			prize.Description,
			*prize.WinningNumber,
			winner,
		), true

	case raffleservice.EventRaffleClosed:
		r, err := n.raffles.GetRaffleByID(ctx, evt.RaffleID)
		if err != nil {
			return "", false
		}
		var b strings.Builder
		fmt.Fprintf(&b, "🏁 %s is closed", r.Name)
		winners := r.Winners()
		if len(winners) == 0 {
			b.WriteString(" without winners")
		}
		for _, p := range winners {
			fmt.Fprintf(&b, "\n#%d %s: %d (%s)", p.Order, p.Description, *p.WinningNumber, p.WinnerName)
		}
		return b.String(), true
	}
	return "", false
}
