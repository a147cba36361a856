package amqp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"verde/internal/events"
	"verde/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestEventMessage(t *testing.T) {
	t.Run("round trip keeps the event", func(t *testing.T) {
		e := events.Event{
			Collection: events.CollectionTransactions,
			Action:     events.ActionCreated,
			EntityID:   "tr-1",
			Payload:    map[string]any{"amount": "150"},
			OccurredAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		}
		body, err := NewEventMessage(e).ToJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(body), `"name":"transactions.created"`) {
			t.Errorf("expected the event name in the body, got %s", body)
		}

		msg, err := EventMessageFromJSON(body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.Name != "transactions.created" || msg.EntityID != "tr-1" {
			t.Errorf("unexpected message: %+v", msg)
		}
		if !msg.OccurredAt.Equal(e.OccurredAt) {
			t.Errorf("expected occurred_at %v, got %v", e.OccurredAt, msg.OccurredAt)
		}
		if msg.Payload["amount"] != "150" {
			t.Errorf("expected payload amount 150, got %v", msg.Payload["amount"])
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		if _, err := EventMessageFromJSON([]byte("{")); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})

	t.Run("rejects messages without collection", func(t *testing.T) {
		if _, err := EventMessageFromJSON([]byte(`{"action":"created"}`)); err == nil {
			t.Error("expected an error for a message without collection")
		}
	})
}

func TestDispatch(t *testing.T) {
	body, _ := NewEventMessage(events.Event{Collection: events.CollectionGoals, Action: events.ActionDeleted, EntityID: "goal-1"}).ToJSON()

	t.Run("passes the event to the handler", func(t *testing.T) {
		var got events.Event
		err := dispatch(body, func(e events.Event) error {
			got = e
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.EntityID != "goal-1" || got.Action != events.ActionDeleted {
			t.Errorf("unexpected event: %+v", got)
		}
	})

	t.Run("handler failure is requeueable", func(t *testing.T) {
		err := dispatch(body, func(events.Event) error { return errors.New("boom") })
		if !errors.Is(err, errHandler) {
			t.Errorf("expected errHandler, got %v", err)
		}
	})

	t.Run("decode failure is not requeueable", func(t *testing.T) {
		called := false
		err := dispatch([]byte("not json"), func(events.Event) error {
			called = true
			return nil
		})
		if err == nil || errors.Is(err, errHandler) {
			t.Errorf("expected a decode error, got %v", err)
		}
		if called {
			t.Error("handler should not run for undecodable bodies")
		}
	})
}

func TestClient_Closed(t *testing.T) {
	client := &Client{exchangeName: "verde", queueName: "verde.events"}

	t.Run("publish fails without a channel", func(t *testing.T) {
		err := client.PublishEvent(context.Background(), events.Event{Collection: events.CollectionUser, Action: events.ActionLogin})
		if !errors.Is(err, errClosed) {
			t.Errorf("expected errClosed, got %v", err)
		}
	})

	t.Run("consume fails without a channel", func(t *testing.T) {
		err := client.ConsumeEvents(context.Background(), func(events.Event) error { return nil })
		if !errors.Is(err, errClosed) {
			t.Errorf("expected errClosed, got %v", err)
		}
	})

	t.Run("close is safe", func(t *testing.T) {
		if err := client.Close(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
