// Package ports defines the contracts between the orders core and its
// infrastructure: persistence, the product catalog and event publishing.
// Adapters implement these interfaces; use cases depend only on them.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/pagination"
)

// OrderRepository defines the persistence contract for order aggregates.
// Storage failures are reported as *errs.PersistenceError.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// FindByID retrieves an order with its line items.
	// Returns (nil, nil) when no order has the given identifier.
	FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindPage returns one page of orders ordered by creation time, optionally
	// filtered by status, together with the total count of matching orders.
	//
	// Example:
	//   params, _ := pagination.NewParams(2, 10)
	//   orders, total, err := repo.FindPage(ctx, nil, params)
	//   // orders holds rows 11..20, total counts every order
	FindPage(ctx context.Context, status *order.Status, params pagination.Params) ([]*order.Order, int64, error)

	// UpdateStatus changes only the status of an existing order and returns it.
	// Returns *errs.ObjectNotFoundError when the order does not exist.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) (*order.Order, error)
}
