package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// OutboxMessage is a persisted domain event awaiting publication.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventName   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored outbox messages.
type OutboxRepository interface {
	// GetUnprocessed returns up to limit unpublished messages, oldest first.
	GetUnprocessed(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed flags a message as published.
	MarkProcessed(ctx context.Context, id kernel.UUID) error
}

// MessagePublisher delivers outbox messages to the message broker.
type MessagePublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
