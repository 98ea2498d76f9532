package queries

import (
	"context"

	"orders/internal/core/application/usecases/readmodel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/pagination"
)

// ListOrdersQueryHandler returns one page of orders with pagination metadata.
// Lines are included without product names; the catalog is not consulted.
//
// Example:
//
//	query, _ := NewListOrdersQuery("PENDING", 3, 10)
//	page, err := handler.Handle(ctx, query)
//	// with 25 pending orders: len(page.Data) == 5, page.Metadata.LastPage == 3
type ListOrdersQueryHandler struct {
	reader OrderReader
}

func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (pagination.Page[readmodel.OrderView], error) {
	if err := query.Validate(); err != nil {
		return pagination.Page[readmodel.OrderView]{}, err
	}

	orders, total, err := h.reader.FindPage(ctx, query.Status(), query.Params())
	if err != nil {
		return pagination.Page[readmodel.OrderView]{}, err
	}

	page := pagination.NewPage(orders, total, query.Params())
	return pagination.Map(page, func(o *order.Order) readmodel.OrderView {
		return readmodel.FromOrder(o, nil)
	}), nil
}
