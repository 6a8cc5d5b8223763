package queries

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c := &pipeline.Context[*order.Order]{RouteID: query.OrderID()}
	if err := pipeline.Run(ctx, c, pipeline.Exists("Order", h.reader.Get)); err != nil {
		return nil, err
	}
	return c.Found, nil
}
