package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// OrderItemInput is one requested line as received from a caller.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Prices are never part of the command; they are resolved from the catalog.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]OrderItemInput{{ProductID: 1, Quantity: 2}}, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items []order.RequestedItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the requested items against the item count
// policy: at least one item and no more than maxItems.
func NewCreateOrderCommand(items []OrderItemInput, maxItems int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(items, maxItems); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns a copy of the requested items in submission order.
func (c CreateOrderCommand) Items() []order.RequestedItem {
	return append([]order.RequestedItem(nil), c.items...)
}

// ProductIDs returns every requested product ID, duplicates included.
func (c CreateOrderCommand) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ProductID())
	}
	return ids
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput, maxItems int) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	if len(items) > maxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), 1, maxItems)
	}

	requested := make([]order.RequestedItem, 0, len(items))
	var itemErrs []error
	for i, input := range items {
		item, err := order.NewRequestedItem(input.ProductID, input.Quantity)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		requested = append(requested, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = requested
	return nil
}
