package orderrepo

import (
	"context"
	"errors"

	"grubdash/internal/adapters/out/postgres/idgen"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idLockKey int64 = 0x6f72646572730001

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return idgen.Next(ctx, r.db, OrderDTO{}.TableName(), idLockKey)
}

// Add inserts the order row and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites the order row and replaces its line items.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("deliver_to", "mobile_number", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	return db.Create(&dto.Dishes).Error
}

// Get locks the row until the surrounding transaction ends.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Dishes", byPosition).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes the order; its line items go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
