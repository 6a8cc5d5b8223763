package order

import (
	"fmt"
	"math"

	"grubdash/internal/pkg/errs"
)

// LineItem is one dish of an order with the number of portions ordered.
// The dish id is carried as given; it is not resolved against the menu.
type LineItem struct {
	dishID   string
	quantity int
}

// NewLineItem validates quantity and returns a line item.
func NewLineItem(dishID string, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, math.MaxInt,
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return LineItem{dishID: dishID, quantity: quantity}, nil
}

func (l LineItem) DishID() string {
	return l.dishID
}

func (l LineItem) Quantity() int {
	return l.quantity
}
