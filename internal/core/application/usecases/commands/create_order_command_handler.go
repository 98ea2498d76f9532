package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/readmodel"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// ErrOrderCreationFailed is returned for any failure after the command was
// accepted. Its message is deliberately generic; the cause is logged.
var ErrOrderCreationFailed = errors.New("order creation failed, check logs")

// OrderCreationFailedError carries the underlying cause of a failed creation.
// Both ErrOrderCreationFailed and the cause match errors.Is.
type OrderCreationFailedError struct {
	Cause error
}

func (e *OrderCreationFailedError) Error() string {
	return ErrOrderCreationFailed.Error()
}

func (e *OrderCreationFailedError) Unwrap() []error {
	return []error{ErrOrderCreationFailed, e.Cause}
}

// CreateOrderCommandHandler places orders: it validates products against the
// catalog, prices the lines, persists the order and returns it enriched with
// product names.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, productValidator, logger)
//	cmd, _ := NewCreateOrderCommand([]OrderItemInput{{ProductID: 1, Quantity: 2}}, 1)
//
//	view, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderCreationFailed) {
//	    // details are in the logs
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  ports.ProductValidator
	pricer     services.OrderPricer
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator ports.ProductValidator,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		pricer:     services.NewOrderPricer(),
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle runs the creation workflow. Nothing is persisted unless every
// product resolves; the catalog is queried once per request.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	view, err := h.create(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "Order creation failed", "error", err)
		return readmodel.OrderView{}, &OrderCreationFailedError{Cause: err}
	}

	h.logger.InfoContext(ctx, "Order created",
		"order_id", view.ID.String(),
		"total_amount", view.TotalAmount.String(),
		"total_items", view.TotalItems,
	)
	return view, nil
}

func (h *CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (readmodel.OrderView, error) {
	ids := product.DistinctIDs(cmd.ProductIDs())

	products, err := h.validator.ValidateProducts(ctx, ids)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	if err = product.VerifyExact(ids, products); err != nil {
		return readmodel.OrderView{}, err
	}
	catalog := product.NewCatalog(products)

	quote, err := h.pricer.Price(cmd.Items(), catalog)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), quote.Lines, time.Now())
	if err != nil {
		return readmodel.OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return readmodel.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	return readmodel.FromOrder(o, &catalog), nil
}
