// Package readmodel holds the response shapes returned by order use cases.
package readmodel

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// LineItemView is a persisted line, optionally enriched with the product name.
type LineItemView struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name,omitempty"`
}

// OrderView is the external representation of an order.
type OrderView struct {
	ID          kernel.UUID     `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalItems  int             `json:"totalItems"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []LineItemView  `json:"items"`
}

// FromOrder builds a view of o. Names are copied from catalog when one is
// given; a nil catalog leaves them empty.
func FromOrder(o *order.Order, catalog *product.Catalog) OrderView {
	items := o.Items()
	views := make([]LineItemView, 0, len(items))
	for _, item := range items {
		view := LineItemView{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		}
		if catalog != nil {
			if p, ok := catalog.Lookup(item.ProductID()); ok {
				view.Name = p.Name()
			}
		}
		views = append(views, view)
	}

	return OrderView{
		ID:          o.ID(),
		TotalAmount: o.TotalAmount(),
		TotalItems:  o.TotalItems(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		Items:       views,
	}
}

// IsEnriched reports whether every line carries a product name.
func (v OrderView) IsEnriched() bool {
	for _, item := range v.Items {
		if item.Name == "" {
			return false
		}
	}
	return true
}
