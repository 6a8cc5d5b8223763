package pipeline

import (
	"context"
	"fmt"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

const (
	statusInvalidMessage    = "Order must have a status of pending, preparing, out-for-delivery, delivered"
	statusDeliveredMessage  = "A delivered order cannot be changed"
	statusNotPendingMessage = "An order cannot be deleted unless it is pending"
)

// StatusIsValid requires a recognized status in the payload and rejects any change to
// an order whose stored status is terminal. It relies on Exists having run.
func StatusIsValid() Check[*order.Order] {
	return Check[*order.Order]{
		Name: "status-is-valid",
		Fn: func(_ context.Context, c *Context[*order.Order]) error {
			if err := payloadStatus(c.Data); err != nil {
				return err
			}
			if c.Found != nil {
				if err := c.Found.Status().ValidateChange(); err != nil {
					return errs.NewValidationError(err, statusDeliveredMessage)
				}
			}
			return nil
		},
	}
}

// OptionalStatusIsValid accepts a missing status and otherwise requires a recognized one.
func OptionalStatusIsValid[T any]() Check[T] {
	return Check[T]{
		Name: "optional-status-is-valid",
		Fn: func(_ context.Context, c *Context[T]) error {
			if !c.Data.Has("status") {
				return nil
			}
			return payloadStatus(c.Data)
		},
	}
}

// StatusIsPending rejects deletion of an order that is not pending. It relies on
// Exists having run.
func StatusIsPending() Check[*order.Order] {
	return Check[*order.Order]{
		Name: "status-is-pending",
		Fn: func(_ context.Context, c *Context[*order.Order]) error {
			if c.Found == nil {
				return errs.NewValidationError(errs.NewValueIsRequiredError("order"), statusNotPendingMessage)
			}
			if err := c.Found.CanBeDeleted(); err != nil {
				return errs.NewValidationError(err, statusNotPendingMessage)
			}
			return nil
		},
	}
}

func payloadStatus(data Payload) error {
	raw, _ := data.Get("status")
	s, ok := raw.(string)
	if !ok || s == "" {
		return errs.NewValidationError(
			errs.NewValueIsRequiredError("status"),
			statusInvalidMessage,
		)
	}
	if _, err := order.ParseStatus(s); err != nil {
		return errs.NewValidationError(
			errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not recognized", s)),
			statusInvalidMessage,
		)
	}
	return nil
}
