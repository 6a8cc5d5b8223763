package postgres

import (
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the dishes, orders and order_line_items tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&dishrepo.DishDTO{}, &orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
}
