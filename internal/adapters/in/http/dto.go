package http

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

// Dish is the wire form of a dish.
type Dish struct {
	ID          string `json:"id" example:"1"`
	Name        string `json:"name" example:"Dolcelatte and chickpea spaghetti"`
	Description string `json:"description" example:"Spaghetti topped with dolcelatte and chickpeas"`
	Price       int    `json:"price" example:"19"`
	ImageURL    string `json:"image_url" example:"https://images.example.com/spaghetti.jpg"`
}

// LineItem is one element of an order's dishes array.
type LineItem struct {
	DishID   string `json:"dishId" example:"1"`
	Quantity int    `json:"quantity" example:"2"`
}

// Order is the wire form of an order.
type Order struct {
	ID           string     `json:"id" example:"1"`
	DeliverTo    string     `json:"deliverTo" example:"308 Negra Arroyo Lane, Albuquerque, NM"`
	MobileNumber string     `json:"mobileNumber" example:"(505) 143-3369"`
	Status       string     `json:"status" example:"pending" enums:"pending,preparing,out-for-delivery,delivered"`
	Dishes       []LineItem `json:"dishes"`
}

type DishResponse struct {
	Data Dish `json:"data"`
}

type DishListResponse struct {
	Data []Dish `json:"data"`
}

type OrderResponse struct {
	Data Order `json:"data"`
}

type OrderListResponse struct {
	Data []Order `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Dish must include a name"`
}

// DishRequest documents the body accepted by POST and PUT /dishes. Handlers read the
// raw data object so that falsy and mistyped values reach the checks unchanged.
type DishRequest struct {
	Data Dish `json:"data"`
}

// OrderRequest documents the body accepted by POST and PUT /orders.
type OrderRequest struct {
	Data Order `json:"data"`
}

func toDish(d *dish.Dish) Dish {
	return Dish{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toOrder(o *order.Order) Order {
	items := o.Items()
	dishes := make([]LineItem, 0, len(items))
	for _, item := range items {
		dishes = append(dishes, LineItem{DishID: item.DishID(), Quantity: item.Quantity()})
	}

	return Order{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       dishes,
	}
}
