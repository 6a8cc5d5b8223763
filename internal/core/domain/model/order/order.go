package order

import (
	"errors"
	"fmt"
	"slices"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer order: where to deliver, whom to call, which dishes and where it
// is in its lifecycle.
//
// Order follows these invariants:
//   - Must have a valid id
//   - deliverTo and mobileNumber are never empty
//   - At least one line item, each with quantity greater than 0
//   - Status is recognized; a delivered order never changes again
type Order struct {
	id           kernel.ID
	deliverTo    string
	mobileNumber string
	status       Status
	items        []LineItem

	isConstructed bool
}

// NewOrder creates an order. An Unknown status defaults to Pending.
//
//	item, _ := order.NewLineItem("3", 2)
//	o, err := order.NewOrder(ids.Next(), "308 Negra Arroyo Lane", "(505) 143-3369", order.Unknown, []order.LineItem{item})
func NewOrder(id kernel.ID, deliverTo, mobileNumber string, status Status, items []LineItem) (*Order, error) {
	if status == Unknown {
		status = Pending
	}

	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setID(id),
		o.setDeliverTo(deliverTo),
		o.setMobileNumber(mobileNumber),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage, including delivered ones.
func RestoreOrder(id kernel.ID, deliverTo, mobileNumber string, status Status, items []LineItem) (*Order, error) {
	if status == Unknown {
		return nil, errs.NewValueIsRequiredError("status")
	}
	return NewOrder(id, deliverTo, mobileNumber, status, items)
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) DeliverTo() string {
	return o.deliverTo
}

func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in their original order.
func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

// Replace overwrites all four mutable fields. It fails when the order is delivered
// or when any new value is invalid; on failure the order is unchanged.
func (o *Order) Replace(deliverTo, mobileNumber string, status Status, items []LineItem) error {
	newStatus, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}

	next := *o
	if err = errors.Join(
		next.setDeliverTo(deliverTo),
		next.setMobileNumber(mobileNumber),
		next.setItems(items),
	); err != nil {
		return err
	}

	next.status = newStatus
	*o = next
	return nil
}

// CanBeDeleted reports whether the order may be removed.
func (o *Order) CanBeDeleted() error {
	return o.status.ValidateDelete()
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	o.deliverTo = deliverTo
	return nil
}

func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	for i, item := range items {
		if item.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("dishes",
				fmt.Errorf("item %d has quantity %d", i, item.quantity))
		}
	}
	o.items = slices.Clone(items)
	return nil
}
