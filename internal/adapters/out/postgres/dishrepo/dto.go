package dishrepo

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
)

// DishDTO is the dishes row. Seq keeps insertion order for listing.
type DishDTO struct {
	ID          string `gorm:"type:text;primaryKey"`
	Seq         int64  `gorm:"autoIncrement;not null;uniqueIndex"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int    `gorm:"not null"`
	ImageURL    string `gorm:"column:image_url;not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return dish.RestoreDish(id, dto.Name, dto.Description, dto.Price, dto.ImageURL)
}
