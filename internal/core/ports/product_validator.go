package ports

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// ProductValidator resolves product IDs against the product catalog.
//
// The result holds exactly one record per distinct input ID. Failures:
//   - product.ErrProductNotFound: at least one ID is unknown to the catalog
//   - product.ErrValidatorUnavailable: transport failure, timeout or open circuit
type ProductValidator interface {
	ValidateProducts(ctx context.Context, ids []int64) ([]product.Product, error)
}
