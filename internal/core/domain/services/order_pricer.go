package services

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ErrUnknownProductInOrder is returned when a requested item references a
// product absent from the catalog. Callers are expected to have validated the
// IDs already, so this indicates an inconsistent catalog response.
var ErrUnknownProductInOrder = errors.New("order references a product missing from the catalog")

// Quote is the priced form of a set of requested items.
type Quote struct {
	Lines       []order.LineItem
	TotalAmount decimal.Decimal
	TotalItems  int
}

// OrderPricer snapshots catalog prices onto requested items.
//
// Business rules:
//   - The price of each line is the catalog price, never a caller-supplied one
//   - Duplicate product IDs stay separate lines
//   - Totals are Σ(price × quantity) and Σ(quantity)
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	quote, err := pricer.Price(items, product.NewCatalog(products))
//	if errors.Is(err, services.ErrUnknownProductInOrder) {
//	    // catalog did not cover every requested product
//	}
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price builds one line per requested item in submission order.
func (p OrderPricer) Price(items []order.RequestedItem, catalog product.Catalog) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, order.ErrOrderHasNoItems
	}

	lines := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		record, ok := catalog.Lookup(item.ProductID())
		if !ok {
			return Quote{}, fmt.Errorf("%w: product %d", ErrUnknownProductInOrder, item.ProductID())
		}

		line, err := order.NewLineItem(item.ProductID(), item.Quantity(), record.Price())
		if err != nil {
			return Quote{}, err
		}
		lines = append(lines, line)
	}

	totalAmount, totalItems := order.Totals(lines)
	return Quote{
		Lines:       lines,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
	}, nil
}
