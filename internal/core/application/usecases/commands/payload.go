package commands

import (
	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// invalid classifies a domain constructor failure that slipped past the chain, e.g. a
// truthy name that is not a string.
func invalid(label string, err error) error {
	return errs.NewValidationError(err, "%s is invalid: %v", label, err)
}

// lineItems converts the dishes array of a payload that already passed HasLineItems.
func lineItems(data pipeline.Payload) ([]order.LineItem, error) {
	raw, _ := data.List("dishes")
	items := make([]order.LineItem, 0, len(raw))
	for _, r := range raw {
		obj, _ := pipeline.Object(r)
		quantity, _ := obj.Integer("quantity")

		item, err := order.NewLineItem(obj.Text("dishId"), quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// requestedStatus returns the payload status, or Unknown when none was supplied.
func requestedStatus(data pipeline.Payload) (order.Status, error) {
	if !data.Has("status") {
		return order.Unknown, nil
	}
	return order.ParseStatus(data.Text("status"))
}
