package dish

import (
	"errors"
	"fmt"
	"math"

	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish was not created through NewDish or RestoreDish.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is a menu item. Fields are private; the only ways to change them are NewDish,
// RestoreDish and Replace, all of which validate every field.
type Dish struct {
	id          kernel.ID
	name        string
	description string
	price       int
	imageURL    string

	isConstructed bool
}

// NewDish creates a dish, validating every field. All field errors are joined.
//
//	d, err := dish.NewDish(ids.Next(), "Dolcelatte and chickpea spaghetti", "Spaghetti topped with...", 19, "https://...")
func NewDish(id kernel.ID, name, description string, price int, imageURL string) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDish rebuilds a dish loaded from storage. It applies the same rules as NewDish.
func RestoreDish(id kernel.ID, name, description string, price int, imageURL string) (*Dish, error) {
	return NewDish(id, name, description, price, imageURL)
}

// Validate ensures the dish was built through a constructor.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.ID {
	return d.id
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Description() string {
	return d.description
}

// Price returns the price in the smallest currency unit.
func (d *Dish) Price() int {
	return d.price
}

func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Replace overwrites all four mutable fields. On error the dish is left unchanged.
func (d *Dish) Replace(name, description string, price int, imageURL string) error {
	next := *d
	if err := errors.Join(
		next.setName(name),
		next.setDescription(description),
		next.setPrice(price),
		next.setImageURL(imageURL),
	); err != nil {
		return err
	}

	*d = next
	return nil
}

func (d *Dish) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause("price", price, 1, math.MaxInt,
			fmt.Errorf("%d is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	d.imageURL = imageURL
	return nil
}
