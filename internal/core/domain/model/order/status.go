package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ◄──► preparing ◄──► out-for-delivery
//	   │             │                 │
//	   └─────────────┴────────┬────────┘
//	                          ▼
//	                      delivered (terminal)
//
// Any non-terminal status may move to any recognized status; progression is not
// forced forward. Once delivered, an order accepts no further changes.
type Status string

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = ""

	// Pending is the initial status. Only pending orders can be deleted.
	Pending Status = "pending"

	// Preparing indicates the kitchen is working on the order.
	Preparing Status = "preparing"

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery Status = "out-for-delivery"

	// Delivered is the terminal status.
	Delivered Status = "delivered"
)

// Statuses lists every recognized status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, OutForDelivery, Delivered}
}

// ParseStatus converts a raw value into a recognized Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// Validate returns an error for any value outside Statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Preparing, OutForDelivery, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateChange checks that an order in status s may still be modified.
func (s Status) ValidateChange() error {
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}
	return nil
}

// ValidateDelete checks that an order in status s may be deleted.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to delete", s.String()),
		)
	}
	return nil
}

// TransitionTo returns next when s may change and next is recognized.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.ValidateChange(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	return next, nil
}
