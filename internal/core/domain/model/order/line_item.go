package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RequestedItem is a line as submitted by a caller: a product and a quantity.
// Prices are never taken from the caller.
type RequestedItem struct {
	productID int64
	quantity  int
}

func NewRequestedItem(productID int64, quantity int) (RequestedItem, error) {
	if err := errors.Join(validateProductID(productID), validateQuantity(quantity)); err != nil {
		return RequestedItem{}, err
	}
	return RequestedItem{productID: productID, quantity: quantity}, nil
}

func (r RequestedItem) ProductID() int64 {
	return r.productID
}

func (r RequestedItem) Quantity() int {
	return r.quantity
}

// LineItem is a priced line owned by an Order. Price is the product price at
// order time and is never recomputed from the catalog.
type LineItem struct {
	id        kernel.UUID
	productID int64
	quantity  int
	price     decimal.Decimal
}

// NewLineItem creates a priced line with a fresh identifier.
func NewLineItem(productID int64, quantity int, price decimal.Decimal) (LineItem, error) {
	return RestoreLineItem(kernel.NewUUID(), productID, quantity, price)
}

// RestoreLineItem rebuilds a line read from storage.
func RestoreLineItem(id kernel.UUID, productID int64, quantity int, price decimal.Decimal) (LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		validateProductID(productID),
		validateQuantity(quantity),
		validatePrice(price),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:        id,
		productID: productID,
		quantity:  quantity,
		price:     price,
	}, nil
}

func (l LineItem) ID() kernel.UUID {
	return l.id
}

func (l LineItem) ProductID() int64 {
	return l.productID
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) Price() decimal.Decimal {
	return l.price
}

// Subtotal is price × quantity.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.price.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Totals sums amount and quantity over lines.
func Totals(lines []LineItem) (decimal.Decimal, int) {
	amount := decimal.Zero
	items := 0
	for _, l := range lines {
		amount = amount.Add(l.Subtotal())
		items += l.quantity
	}
	return amount, items
}

func validateProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("%d is not greater than 0", productID))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Truncate(product.MaxPriceScale)) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s has more than %d decimal places", price, product.MaxPriceScale))
	}
	return nil
}
