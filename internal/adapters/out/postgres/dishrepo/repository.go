package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/adapters/out/postgres/idgen"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idLockKey int64 = 0x6469736865730001

type GormDishRepository struct {
	db *gorm.DB
}

func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

func (r *GormDishRepository) NextID(ctx context.Context) (kernel.ID, error) {
	return idgen.Next(ctx, r.db, DishDTO{}.TableName(), idLockKey)
}

func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "price", "image_url").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dishId", dto.ID)
	}
	return nil
}

// Get locks the row until the surrounding transaction ends.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
