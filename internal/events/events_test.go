package events

import (
	"context"
	"errors"
	"testing"

	"verde/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestBusPublish(t *testing.T) {
	t.Run("delivers in order to every subscriber", func(t *testing.T) {
		bus := NewBus()
		var got []string
		bus.Subscribe(func(_ context.Context, e Event) { got = append(got, "a:"+e.Name()) })
		bus.Subscribe(func(_ context.Context, e Event) { got = append(got, "b:"+e.Name()) })

		bus.Publish(context.Background(),
			Event{Collection: CollectionTransactions, Action: ActionCreated},
			Event{Collection: CollectionUser, Action: ActionUpdated},
		)

		want := []string{"a:transactions.created", "b:transactions.created", "a:user.updated", "b:user.updated"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("panicking subscriber does not stop delivery", func(t *testing.T) {
		bus := NewBus()
		delivered := false
		bus.Subscribe(func(context.Context, Event) { panic("boom") })
		bus.Subscribe(func(context.Context, Event) { delivered = true })

		bus.Publish(context.Background(), Event{Collection: CollectionGoals, Action: ActionDeleted})
		if !delivered {
			t.Error("expected second subscriber to receive the event")
		}
	})
}

type fakePublisher struct {
	events []Event
	err    error
}

func (f *fakePublisher) PublishEvent(ctx context.Context, e Event) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected deadline")
	}
	f.events = append(f.events, e)
	return f.err
}

func TestForward(t *testing.T) {
	t.Run("relays with a deadline", func(t *testing.T) {
		p := &fakePublisher{}
		Forward(p)(context.Background(), Event{Collection: CollectionBudgets, Action: ActionRefreshed})
		if len(p.events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(p.events))
		}
	})

	t.Run("swallows publish errors", func(t *testing.T) {
		p := &fakePublisher{err: errors.New("broker down")}
		Forward(p)(context.Background(), Event{Collection: CollectionBudgets, Action: ActionRefreshed})
		if len(p.events) != 1 {
			t.Fatalf("expected publish attempt, got %d", len(p.events))
		}
	})

	t.Run("survives a cancelled caller context", func(t *testing.T) {
		p := &fakePublisher{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Forward(p)(ctx, Event{Collection: CollectionGoals, Action: ActionCreated})
		if len(p.events) != 1 {
			t.Fatal("expected event forwarded after request cancellation")
		}
	})
}
