package amqp

import (
	"encoding/json"
	"fmt"

	"verde/internal/events"
)

// EventMessage is the wire form of a committed ledger mutation.
type EventMessage struct {
	Name string `json:"name"`
	events.Event
}

// NewEventMessage wraps e for publishing.
func NewEventMessage(e events.Event) *EventMessage {
	return &EventMessage{Name: e.Name(), Event: e}
}

// ToJSON converts the message to JSON bytes
func (m *EventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventMessageFromJSON decodes a message body. Bodies without a collection
// or action are rejected.
func EventMessageFromJSON(data []byte) (*EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Collection == "" || msg.Action == "" {
		return nil, fmt.Errorf("message missing collection or action")
	}
	return &msg, nil
}
