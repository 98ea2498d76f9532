package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
	"orders/internal/pkg/pagination"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, optionally filtered by status.
// A zero page or limit selects the pagination defaults.
type ListOrdersQuery struct {
	status *order.Status
	params pagination.Params

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses status when non-empty; an empty status lists all orders.
func NewListOrdersQuery(status string, page, limit int) (ListOrdersQuery, error) {
	var filter *order.Status
	var statusErr error
	if status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			statusErr = err
		} else {
			filter = &parsed
		}
	}

	params, paramsErr := pagination.NewParams(page, limit)
	if err := errors.Join(statusErr, paramsErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status: filter,
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, or nil when every status is listed.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

func (q ListOrdersQuery) Params() pagination.Params {
	return q.params
}
