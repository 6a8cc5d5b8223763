package dishrepo

import (
	"context"
	"errors"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishReader serves queries outside any unit of work.
type GormDishReader struct {
	db *gorm.DB
}

func NewGormDishReader(db *gorm.DB) *GormDishReader {
	return &GormDishReader{db: db}
}

func (r *GormDishReader) List(ctx context.Context) ([]*dish.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

func (r *GormDishReader) Get(ctx context.Context, id kernel.ID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dishId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
