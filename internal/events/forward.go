package events

import (
	"context"
	"time"

	"verde/internal/logger"
)

// Publisher ships an event to an external system.
type Publisher interface {
	PublishEvent(ctx context.Context, e Event) error
}

// forwardTimeout bounds each external publish.
const forwardTimeout = 5 * time.Second

// Forward returns a Handler that relays events to p. Failures are logged and
// never reach the mutation caller.
func Forward(p Publisher) Handler {
	return func(ctx context.Context, e Event) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), forwardTimeout)
		defer cancel()
		if err := p.PublishEvent(ctx, e); err != nil {
			logger.Get().Warnw("failed to forward event", "event", e.Name(), "entity_id", e.EntityID, "error", err)
		}
	}
}
