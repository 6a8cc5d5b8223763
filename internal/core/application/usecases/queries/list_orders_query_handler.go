package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
