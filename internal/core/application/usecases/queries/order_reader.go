package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/pagination"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error)
	FindPage(ctx context.Context, status *order.Status, params pagination.Params) ([]*order.Order, int64, error)
}
