// Package events is the in-process notification bus. The state manager
// publishes one Event per committed mutation; subscribers (audit log, AMQP
// forwarder) react after the new state is visible.
package events

import (
	"context"
	"sync"
	"time"

	"verde/internal/logger"
)

// Action names the kind of mutation.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionPaid      Action = "paid"
	ActionRefreshed Action = "refreshed"
	ActionLogin     Action = "login"
	ActionLogout    Action = "logout"
)

// Collection names the state collection a mutation touched.
type Collection string

const (
	CollectionCategories   Collection = "categories"
	CollectionAccounts     Collection = "accounts"
	CollectionTransactions Collection = "transactions"
	CollectionBudgets      Collection = "budgets"
	CollectionSchedules    Collection = "schedules"
	CollectionInvestments  Collection = "investments"
	CollectionGoals        Collection = "goals"
	CollectionUser         Collection = "user"
)

// Event describes one committed mutation.
type Event struct {
	Collection Collection     `json:"collection"`
	Action     Action         `json:"action"`
	EntityID   string         `json:"entity_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Name returns "<collection>.<action>", e.g. "transactions.created".
func (e Event) Name() string {
	return string(e.Collection) + "." + string(e.Action)
}

// Handler receives published events.
type Handler func(ctx context.Context, e Event)

// Bus fans events out to subscribers synchronously, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for every subsequent event.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers each event to every subscriber. A panicking subscriber is
// logged and does not stop delivery to the rest.
func (b *Bus) Publish(ctx context.Context, evts ...Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, e := range evts {
		for _, h := range handlers {
			deliver(ctx, h, e)
		}
	}
}

func deliver(ctx context.Context, h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Errorw("event subscriber panicked", "event", e.Name(), "panic", r)
		}
	}()
	h(ctx, e)
}
