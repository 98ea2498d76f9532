package queries_test

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) FindPage(
	ctx context.Context,
	status *order.Status,
	params pagination.Params,
) ([]*order.Order, int64, error) {
	args := m.Called(ctx, status, params)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type MockProductValidator struct{ mock.Mock }

func (m *MockProductValidator) ValidateProducts(ctx context.Context, ids []int64) ([]product.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]product.Product)
	return products, args.Error(1)
}
