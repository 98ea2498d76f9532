package services_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id int64, name, price string) product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name, decimal.RequireFromString(price))
	require.NoError(t, err)
	return p
}

func mustItem(t *testing.T, productID int64, quantity int) order.RequestedItem {
	t.Helper()
	item, err := order.NewRequestedItem(productID, quantity)
	require.NoError(t, err)
	return item
}

func TestOrderPricer_Price(t *testing.T) {
	catalog := product.NewCatalog([]product.Product{
		mustProduct(t, 1, "Widget", "10"),
		mustProduct(t, 2, "Gadget", "2.50"),
	})
	pricer := services.NewOrderPricer()

	t.Run("should use catalog price and compute totals", func(t *testing.T) {
		quote, err := pricer.Price([]order.RequestedItem{mustItem(t, 1, 2)}, catalog)

		require.NoError(t, err)
		require.Len(t, quote.Lines, 1)
		assert.True(t, decimal.NewFromInt(10).Equal(quote.Lines[0].Price()))
		assert.True(t, decimal.NewFromInt(20).Equal(quote.TotalAmount))
		assert.Equal(t, 2, quote.TotalItems)
	})

	t.Run("should keep duplicates as separate lines in submission order", func(t *testing.T) {
		quote, err := pricer.Price([]order.RequestedItem{
			mustItem(t, 2, 1),
			mustItem(t, 1, 1),
			mustItem(t, 2, 3),
		}, catalog)

		require.NoError(t, err)
		require.Len(t, quote.Lines, 3)
		assert.Equal(t, int64(2), quote.Lines[0].ProductID())
		assert.Equal(t, int64(1), quote.Lines[1].ProductID())
		assert.Equal(t, int64(2), quote.Lines[2].ProductID())
		assert.True(t, decimal.NewFromInt(20).Equal(quote.TotalAmount))
		assert.Equal(t, 5, quote.TotalItems)
	})

	t.Run("should fail for product missing from catalog", func(t *testing.T) {
		_, err := pricer.Price([]order.RequestedItem{mustItem(t, 1, 1), mustItem(t, 99, 1)}, catalog)

		require.ErrorIs(t, err, services.ErrUnknownProductInOrder)
		assert.Contains(t, err.Error(), "99")
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := pricer.Price(nil, catalog)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
