package service

import (
	"sync"
	"time"
)

// Event types published by the raffle store.
const (
	EventRaffleCreated = "raffle.created"
	EventRaffleUpdated = "raffle.updated"
	EventRaffleDeleted = "raffle.deleted"
	EventPrizeDrawn    = "prize.drawn"
	EventRaffleClosed  = "raffle.closed"
)

type Event struct {
	Type     string      `json:"type"`
	RaffleID string      `json:"raffle_id"`
	Data     interface{} `json:"data,omitempty"`
	At       time.Time   `json:"at"`
}

// Broadcaster receives store events. Publish must not block.
type Broadcaster interface {
	Publish(evt Event)
}

// Subscriber is one listener of a Hub.
type Subscriber struct {
	ch chan Event
}

func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

// Hub fans events out to subscribers. Slow subscribers miss events instead
// of blocking the publisher.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
	buffer      int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subscribers: make(map[*Subscriber]struct{}), buffer: buffer}
}

func (h *Hub) Subscribe() *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{ch: make(chan Event, h.buffer)}
	h.subscribers[sub] = struct{}{}
	return sub
}

// Unsubscribe closes the subscriber channel. Calling it twice is safe.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.ch)
	}
}

func (h *Hub) Publish(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers {
		select {
		case sub.ch <- evt:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
