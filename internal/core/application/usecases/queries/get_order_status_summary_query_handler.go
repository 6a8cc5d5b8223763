package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

type GetOrderStatusSummaryQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderStatusSummaryQueryHandler(reader ports.OrderReader) GetOrderStatusSummaryQueryHandler {
	return GetOrderStatusSummaryQueryHandler{reader: reader}
}

func (h GetOrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusSummaryQuery,
) (GetOrderStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	counts, err := h.reader.CountByStatus(ctx)
	if err != nil {
		return GetOrderStatusSummaryQueryResponse{}, err
	}

	var response GetOrderStatusSummaryQueryResponse
	for _, status := range order.Statuses() {
		n := counts[status]
		response.Statuses = append(response.Statuses, StatusCount{Status: status, Count: n})
		response.Total += n
	}
	return response, nil
}
