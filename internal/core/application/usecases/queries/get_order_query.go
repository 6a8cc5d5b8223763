package queries

import (
	"errors"

	"grubdash/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by the id taken from the route.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) GetOrderQuery {
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
