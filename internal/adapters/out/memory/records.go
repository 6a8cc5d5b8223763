package memory

import (
	"slices"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
)

// Records are plain values. The store holds only records and rebuilds aggregates on
// every read, so callers never share state with the store.

type dishRecord struct {
	ID          string
	Name        string
	Description string
	Price       int
	ImageURL    string
}

type lineItemRecord struct {
	DishID   string
	Quantity int
}

type orderRecord struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []lineItemRecord
}

func dishFromDomain(d *dish.Dish) dishRecord {
	return dishRecord{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func dishToDomain(r dishRecord) (*dish.Dish, error) {
	id, err := kernel.NewID(r.ID)
	if err != nil {
		return nil, err
	}
	return dish.RestoreDish(id, r.Name, r.Description, r.Price, r.ImageURL)
}

func orderFromDomain(o *order.Order) orderRecord {
	items := o.Items()
	dishes := make([]lineItemRecord, 0, len(items))
	for _, item := range items {
		dishes = append(dishes, lineItemRecord{DishID: item.DishID(), Quantity: item.Quantity()})
	}

	return orderRecord{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}

func orderToDomain(r orderRecord) (*order.Order, error) {
	id, err := kernel.NewID(r.ID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(r.Dishes))
	for _, d := range r.Dishes {
		item, itemErr := order.NewLineItem(d.DishID, d.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, r.DeliverTo, r.MobileNumber, status, items)
}

func (r orderRecord) clone() orderRecord {
	r.Dishes = slices.Clone(r.Dishes)
	return r
}
