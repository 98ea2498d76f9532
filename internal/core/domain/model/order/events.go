package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	CreatedEventName       = "order.created"
	StatusChangedEventName = "order.status_changed"
)

// CreatedEventItem is the line snapshot carried by CreatedEvent.
type CreatedEventItem struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreatedEvent is recorded when a new order is constructed.
type CreatedEvent struct {
	ID          kernel.UUID        `json:"eventId"`
	OrderID     kernel.UUID        `json:"orderId"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	TotalItems  int                `json:"totalItems"`
	Status      string             `json:"status"`
	Items       []CreatedEventItem `json:"items"`
	At          time.Time          `json:"occurredAt"`
}

func (e CreatedEvent) EventID() kernel.UUID     { return e.ID }
func (e CreatedEvent) EventName() string        { return CreatedEventName }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

// StatusChangedEvent is recorded on every effective status transition.
type StatusChangedEvent struct {
	ID      kernel.UUID `json:"eventId"`
	OrderID kernel.UUID `json:"orderId"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	At      time.Time   `json:"occurredAt"`
}

func (e StatusChangedEvent) EventID() kernel.UUID     { return e.ID }
func (e StatusChangedEvent) EventName() string        { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }
