package queries

import (
	"context"
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/readmodel"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ErrOrderNotFound is returned when no order has the requested identifier.
// It matches errs.ErrObjectNotFound.
var ErrOrderNotFound = fmt.Errorf("%w: order", errs.ErrObjectNotFound)

// GetOrderQueryHandler loads an order and enriches its lines with current
// product names from the catalog.
//
// By default a catalog failure fails the whole read. With degraded reads
// enabled the order is returned without names and the failure is logged.
type GetOrderQueryHandler struct {
	reader        OrderReader
	validator     ports.ProductValidator
	degradedReads bool
	logger        *slog.Logger
}

func NewGetOrderQueryHandler(
	reader OrderReader,
	validator ports.ProductValidator,
	degradedReads bool,
	logger *slog.Logger,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		reader:        reader,
		validator:     validator,
		degradedReads: degradedReads,
		logger:        logger.With("component", "get_order_handler"),
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (readmodel.OrderView, error) {
	if err := query.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	o, err := h.reader.FindByID(ctx, query.OrderID())
	if err != nil {
		return readmodel.OrderView{}, err
	}
	if o == nil {
		return readmodel.OrderView{}, fmt.Errorf("%w %s", ErrOrderNotFound, query.OrderID())
	}

	ids := o.ProductIDs()
	products, err := h.validator.ValidateProducts(ctx, ids)
	if err == nil {
		err = product.VerifyExact(ids, products)
	}
	if err != nil {
		if !h.degradedReads {
			return readmodel.OrderView{}, fmt.Errorf("enrich order %s: %w", o.ID(), err)
		}
		h.logger.WarnContext(ctx, "Returning order without product names",
			"order_id", o.ID().String(),
			"error", err,
		)
		return readmodel.FromOrder(o, nil), nil
	}

	catalog := product.NewCatalog(products)
	return readmodel.FromOrder(o, &catalog), nil
}
