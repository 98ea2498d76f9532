package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its item rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByID returns (nil, nil) when the order does not exist.
func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.load(r.db.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewPersistenceError("find order", err)
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewPersistenceError("restore order", err)
	}
	return o, nil
}

// FindPage lists orders by created_at then id, so pages are stable.
func (r *GormOrderRepository) FindPage(
	ctx context.Context,
	status *order.Status,
	params pagination.Params,
) ([]*order.Order, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if status != nil {
			return db.Where("status = ?", status.String())
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, errs.NewPersistenceError("count orders", err)
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(filter).
		Preload("Items", orderedItems).
		Order("created_at, id").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, errs.NewPersistenceError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, 0, errs.NewPersistenceError("restore order", mapErr)
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

// UpdateStatus locks the order row, applies the transition on the aggregate
// and writes only the status column.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	dto, err := r.load(db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewPersistenceError("find order", err)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, errs.NewPersistenceError("restore order", err)
	}

	changed, err := aggregate.ChangeStatus(status)
	if err != nil {
		return nil, err
	}
	if !changed {
		return aggregate, nil
	}

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("status", aggregate.Status().String())
	if result.Error != nil {
		return nil, errs.NewPersistenceError("update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

func (r *GormOrderRepository) load(db *gorm.DB, id kernel.UUID) (OrderDTO, error) {
	var dto OrderDTO
	err := db.Preload("Items", orderedItems).First(&dto, "id = ?", id.Bytes()).Error
	return dto, err
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
