package orderrepo

import (
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// OrderDTO is the orders row. Seq keeps insertion order for listing.
type OrderDTO struct {
	ID           string        `gorm:"type:text;primaryKey"`
	Seq          int64         `gorm:"autoIncrement;not null;uniqueIndex"`
	DeliverTo    string        `gorm:"not null"`
	MobileNumber string        `gorm:"not null"`
	Status       string        `gorm:"type:text;not null;index"`
	Dishes       []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one element of an order's dishes array. Position keeps the array order.
type LineItemDTO struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  string `gorm:"type:text;not null;index"`
	Position int    `gorm:"not null"`
	DishID   string `gorm:"not null"`
	Quantity int    `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dishes := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		dishes = append(dishes, LineItemDTO{
			OrderID:  o.ID().String(),
			Position: i,
			DishID:   item.DishID(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Dishes))
	for _, d := range dto.Dishes {
		item, itemErr := order.NewLineItem(d.DishID, d.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.DeliverTo, dto.MobileNumber, status, items)
}
