package kernel

import (
	"strings"

	"grubdash/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDSequence")

// ID is the immutable identifier of a dish or an order. Ids are opaque strings on the
// wire; ids issued by IDSequence are decimal, ids loaded from fixtures may be anything
// non-blank.
//
// The zero value is invalid.
type ID struct {
	value string
}

// NewID wraps a non-blank string as an ID.
//
//	id, err := kernel.NewID(c.Param("dishId"))
//	if err != nil {
//	    return errs.NewNotFoundError(err, "Dish does not exist: %s.", c.Param("dishId"))
//	}
func NewID(value string) (ID, error) {
	if strings.TrimSpace(value) == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(value string) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (i ID) String() string {
	return i.value
}

// IsEqual compares two ids by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
