package pipeline

import "context"

// Context is threaded through a chain. RouteID and Data are inputs; Found is filled by
// Exists for the checks that follow it.
type Context[T any] struct {
	RouteID string
	Data    Payload
	Found   T
}

// Check is one named step of a chain. Fn returns nil to continue.
type Check[T any] struct {
	Name string
	Fn   func(ctx context.Context, c *Context[T]) error
}

// Run evaluates checks in order and returns the first error.
func Run[T any](ctx context.Context, c *Context[T], checks ...Check[T]) error {
	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := check.Fn(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
