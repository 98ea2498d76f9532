// Package product holds the read-only view of catalog products consumed by
// the orders service. Products are fetched from the product service and are
// never persisted here.
package product

import (
	"errors"
	"fmt"
	"slices"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when the catalog cannot resolve one or more IDs.
	ErrProductNotFound = errors.New("product not found")

	// ErrValidatorUnavailable is returned on transport failure, timeout or an open circuit.
	ErrValidatorUnavailable = errors.New("product validator unavailable")
)

// NotFoundError lists the IDs the catalog failed to resolve.
type NotFoundError struct {
	IDs []int64
}

func NewNotFoundError(ids ...int64) *NotFoundError {
	return &NotFoundError{IDs: ids}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", ErrProductNotFound, e.IDs)
}

func (e *NotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// MaxPriceScale is the number of decimal places a stored price can hold.
const MaxPriceScale = 2

// Product is an authoritative catalog record.
type Product struct {
	id    int64
	name  string
	price decimal.Decimal
}

// NewProduct validates a catalog record received from the product service.
func NewProduct(id int64, name string, price decimal.Decimal) (Product, error) {
	if id <= 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not positive", id))
	}
	if price.IsNegative() {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("product price", fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Truncate(MaxPriceScale)) {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("product price",
			fmt.Errorf("%s has more than %d decimal places", price, MaxPriceScale))
	}
	return Product{id: id, name: name, price: price}, nil
}

func (p Product) ID() int64 {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() decimal.Decimal {
	return p.price
}

// Catalog indexes a validated product set by ID.
type Catalog struct {
	byID map[int64]Product
}

func NewCatalog(products []Product) Catalog {
	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		byID[p.id] = p
	}
	return Catalog{byID: byID}
}

func (c Catalog) Lookup(id int64) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c Catalog) Len() int {
	return len(c.byID)
}

// DistinctIDs removes duplicates while keeping first-seen order.
func DistinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// VerifyExact checks that products holds exactly one record for every ID in
// requested and nothing else. requested must already be distinct.
func VerifyExact(requested []int64, products []Product) error {
	catalog := NewCatalog(products)

	missing := make([]int64, 0)
	for _, id := range requested {
		if _, ok := catalog.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return NewNotFoundError(missing...)
	}

	if len(products) != len(requested) {
		unexpected := make([]int64, 0)
		for _, p := range products {
			if !slices.Contains(requested, p.id) {
				unexpected = append(unexpected, p.id)
			}
		}
		return fmt.Errorf("%w: catalog returned %d records for %d ids (unexpected %v)",
			ErrProductNotFound, len(products), len(requested), unexpected)
	}

	return nil
}
