package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/application/usecases/readmodel"
)

// ChangeOrderStatusCommandHandler moves orders between statuses.
//
// The order is loaded through the single-order read first, so a missing order
// fails with queries.ErrOrderNotFound before any write. Requesting the current
// status returns the order unchanged without touching storage.
type ChangeOrderStatusCommandHandler struct {
	finder     OrderFinder
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	finder OrderFinder,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		finder:     finder,
		uowFactory: uowFactory,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	query, err := queries.NewGetOrderQuery(cmd.OrderID())
	if err != nil {
		return readmodel.OrderView{}, err
	}

	current, err := h.finder.Handle(ctx, query)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	if current.Status == cmd.Status().String() {
		return current, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.OrderRepository().UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
	if err != nil {
		return readmodel.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", cmd.OrderID().String(),
		"from", current.Status,
		"to", updated.Status().String(),
	)

	current.Status = updated.Status().String()
	return current, nil
}
