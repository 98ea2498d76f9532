// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and created_at are indexed for filtered, time-ordered listing.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalItems  int             `gorm:"type:int;not null"`
	Status      string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time       `gorm:"type:timestamptz;not null;index"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item row. Position keeps submission order.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"type:int;not null"`
	ProductID int64           `gorm:"type:bigint;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lines := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(lines))

	for i, line := range lines {
		items = append(items, OrderItemDTO{
			ID:        line.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			Price:     line.Price(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		TotalAmount: aggregate.TotalAmount(),
		TotalItems:  aggregate.TotalItems(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		Items:       items,
	}
}

// toDomain rebuilds the aggregate; RestoreOrder re-checks the totals invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		lineID, lineErr := kernel.UUIDFromBytes(item.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLineItem(lineID, item.ProductID, item.Quantity, item.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.TotalAmount, dto.TotalItems, status, dto.CreatedAt, lines)
}
