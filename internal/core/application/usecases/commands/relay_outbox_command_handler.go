package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orders/internal/core/ports"
)

// OutboxObserver receives the outcome of every publish attempt.
type OutboxObserver interface {
	ObserveOutboxPublish(err error)
}

// RelayOutboxCommandHandler forwards stored domain events to the broker.
//
// Messages are published oldest first. The batch stops at the first publish
// failure so later events of the same order are never sent ahead of it; the
// failed message stays unprocessed and is retried on the next run. Delivery
// is at-least-once.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.MessagePublisher
	observer  OutboxObserver
	logger    *slog.Logger
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.MessagePublisher,
	observer OutboxObserver,
	logger *slog.Logger,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
		observer:  observer,
		logger:    logger.With("component", "outbox_relay_handler"),
	}
}

// Handle returns the number of messages published and marked processed.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.outbox.GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	relayed := 0
	for _, msg := range messages {
		err = h.publisher.Publish(ctx, msg)
		h.observer.ObserveOutboxPublish(err)
		if err != nil {
			return relayed, fmt.Errorf("relay outbox message %s: %w", msg.ID, err)
		}

		if err = h.outbox.MarkProcessed(ctx, msg.ID); err != nil {
			return relayed, err
		}
		relayed++
	}

	if relayed > 0 {
		h.logger.DebugContext(ctx, "Outbox messages relayed", "count", relayed)
	}
	return relayed, nil
}
