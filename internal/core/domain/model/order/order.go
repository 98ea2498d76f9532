package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of a purchase: its line items, the totals
// derived from them, and its lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Has at least one line item
//   - totalAmount == Σ(price × quantity) over its line items
//   - totalItems == Σ(quantity) over its line items
//   - Status is always a declared Status
//
// Line items are fixed at construction; only the status changes afterwards.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// totalAmount is the sum of line subtotals
	totalAmount decimal.Decimal

	// totalItems is the sum of line quantities
	totalItems int

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp (UTC, microsecond precision)
	createdAt time.Time

	// items are the owned line items in submission order
	items []LineItem

	// events are domain events recorded since the last ClearDomainEvents
	events []kernel.DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a PENDING order from priced lines. Totals are computed
// from the lines, and an order.created event is recorded.
//
// Example:
//
//	line, _ := order.NewLineItem(1, 2, decimal.NewFromInt(10))
//	o, err := order.NewOrder(kernel.NewUUID(), []order.LineItem{line}, time.Now())
//	// o.TotalAmount() == 20, o.TotalItems() == 2, o.Status() == order.Pending
func NewOrder(id kernel.UUID, items []LineItem, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	totalAmount, totalItems := Totals(items)
	o := &Order{
		id:            id,
		totalAmount:   totalAmount,
		totalItems:    totalItems,
		status:        Pending,
		createdAt:     normalizeTime(createdAt),
		items:         append([]LineItem(nil), items...),
		isConstructed: true,
	}

	o.record(o.createdEvent())
	return o, nil
}

// RestoreOrder rebuilds an order read from storage and re-checks the totals
// invariant against the stored lines. No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	totalAmount decimal.Decimal,
	totalItems int,
	status Status,
	createdAt time.Time,
	items []LineItem,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	expectedAmount, expectedItems := Totals(items)
	if !expectedAmount.Equal(totalAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s does not match line items sum %s", totalAmount, expectedAmount))
	}
	if expectedItems != totalItems {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalItems",
			fmt.Errorf("%d does not match line items sum %d", totalItems, expectedItems))
	}

	return &Order{
		id:            id,
		totalAmount:   totalAmount,
		totalItems:    totalItems,
		status:        status,
		createdAt:     normalizeTime(createdAt),
		items:         append([]LineItem(nil), items...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) TotalItems() int {
	return o.totalItems
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// ProductIDs returns the distinct product IDs referenced by the lines.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.productID)
	}
	return product.DistinctIDs(ids)
}

// ChangeStatus moves the order to next. It reports false, and records
// nothing, when next equals the current status.
func (o *Order) ChangeStatus(next Status) (bool, error) {
	if err := next.Validate(); err != nil {
		return false, err
	}
	if next == o.status {
		return false, nil
	}

	previous := o.status
	o.status = next
	o.record(StatusChangedEvent{
		ID:      kernel.NewUUID(),
		OrderID: o.id,
		From:    previous.String(),
		To:      next.String(),
		At:      time.Now().UTC(),
	})
	return true, nil
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) createdEvent() CreatedEvent {
	items := make([]CreatedEventItem, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, CreatedEventItem{
			ProductID: item.productID,
			Quantity:  item.quantity,
			Price:     item.price,
		})
	}

	return CreatedEvent{
		ID:          kernel.NewUUID(),
		OrderID:     o.id,
		TotalAmount: o.totalAmount,
		TotalItems:  o.totalItems,
		Status:      o.status.String(),
		Items:       items,
		At:          o.createdAt,
	}
}

// PostgreSQL stores microseconds; truncating keeps restored orders equal to new ones.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
