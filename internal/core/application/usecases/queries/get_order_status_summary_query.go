package queries

import (
	"errors"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/guard"
)

var (
	ErrGetOrderStatusSummaryQueryIsNotConstructed = errors.New(
		"GetOrderStatusSummaryQuery must be created via NewGetOrderStatusSummaryQuery constructor",
	)
)

// GetOrderStatusSummaryQuery counts orders per status for the order board report.
type GetOrderStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusSummaryQuery() GetOrderStatusSummaryQuery {
	return GetOrderStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusSummaryQueryIsNotConstructed)
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status order.Status
	Count  int
}

// GetOrderStatusSummaryQueryResponse lists every recognized status in lifecycle order,
// including those with no orders.
//
// Example:
//
//	response := GetOrderStatusSummaryQueryResponse{
//	    Statuses: []StatusCount{{order.Pending, 3}, {order.Preparing, 1},
//	        {order.OutForDelivery, 0}, {order.Delivered, 12}},
//	    Total: 16,
//	}
type GetOrderStatusSummaryQueryResponse struct {
	Statuses []StatusCount
	Total    int
}
