package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// Exists looks the route id up with find and stores the result in Context.Found.
// label names the resource in messages ("Dish", "Order").
func Exists[T any](label string, find func(ctx context.Context, id kernel.ID) (T, error)) Check[T] {
	param := strings.ToLower(label) + "Id"

	return Check[T]{
		Name: "exists",
		Fn: func(ctx context.Context, c *Context[T]) error {
			id, err := kernel.NewID(c.RouteID)
			if err != nil {
				return errs.NewNotFoundError(
					errs.NewObjectNotFoundErrorWithCause(param, c.RouteID, err),
					"%s does not exist: %s.", label, c.RouteID,
				)
			}

			found, err := find(ctx, id)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return errs.NewNotFoundError(err, "%s does not exist: %s.", label, c.RouteID)
				}
				return err
			}

			c.Found = found
			return nil
		},
	}
}

// RequiredFields fails on the first field, in the given order, that is missing or falsy.
func RequiredFields[T any](label string, fields ...string) Check[T] {
	return Check[T]{
		Name: "required-fields",
		Fn: func(_ context.Context, c *Context[T]) error {
			for _, field := range fields {
				if !c.Data.Has(field) {
					return errs.NewValidationError(
						errs.NewValueIsRequiredError(field),
						"%s must include a %s", label, field,
					)
				}
			}
			return nil
		},
	}
}

// IsNumber fails when field does not hold a number.
func IsNumber[T any](field, message string) Check[T] {
	return Check[T]{
		Name: "is-number",
		Fn: func(_ context.Context, c *Context[T]) error {
			v, _ := c.Data.Get(field)
			if _, ok := Number(v); !ok {
				return errs.NewValidationError(
					errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%v is not a number", v)),
					"%s", message,
				)
			}
			return nil
		},
	}
}

// IsPositiveInteger fails when field is absent, not an integer, or not greater than 0.
func IsPositiveInteger[T any](field, message string) Check[T] {
	return Check[T]{
		Name: "is-positive-integer",
		Fn: func(_ context.Context, c *Context[T]) error {
			v, _ := c.Data.Get(field)
			if err := positiveInteger(field, v); err != nil {
				return errs.NewValidationError(err, "%s", message)
			}
			return nil
		},
	}
}

// HasLineItems fails when field is not a non-empty array, then when any element lacks
// an integer quantity greater than 0. The first offending index is reported.
func HasLineItems[T any](field string) Check[T] {
	return Check[T]{
		Name: "has-line-items",
		Fn: func(_ context.Context, c *Context[T]) error {
			items, ok := c.Data.List(field)
			if !ok || len(items) == 0 {
				return errs.NewValidationError(
					errs.NewValueIsRequiredError(field),
					"Order must include at least one dish",
				)
			}

			for i, raw := range items {
				item, _ := Object(raw)
				quantity, _ := item.Get("quantity")
				if err := positiveInteger("quantity", quantity); err != nil {
					return errs.NewValidationError(
						err,
						"Dish %d must have a quantity that is an integer greater than 0", i,
					)
				}
			}
			return nil
		},
	}
}

// IDMatchesRoute fails when the body carries an id that differs from the route id.
// A missing id on either side passes.
func IDMatchesRoute[T any](label string) Check[T] {
	return Check[T]{
		Name: "id-matches-route",
		Fn: func(_ context.Context, c *Context[T]) error {
			bodyID, _ := c.Data.Get("id")
			if !IsTruthy(bodyID) || c.RouteID == "" {
				return nil
			}
			if s, ok := bodyID.(string); ok && s == c.RouteID {
				return nil
			}

			return errs.NewValidationError(
				errs.NewValueIsInvalidErrorWithCause("id",
					fmt.Errorf("body id %v differs from route id %s", bodyID, c.RouteID)),
				"%s id does not match route id. %s: %v, Route: %s.", label, label, bodyID, c.RouteID,
			)
		},
	}
}

func positiveInteger(field string, v any) error {
	if v == nil {
		return errs.NewValueIsRequiredError(field)
	}
	n, ok := Integer(v)
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%v is not an integer", v))
	}
	if n <= 0 {
		return errs.NewValueIsOutOfRangeError(field, n, 1, math.MaxInt)
	}
	return nil
}
