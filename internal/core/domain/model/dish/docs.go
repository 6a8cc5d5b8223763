// Package dish provides the Dish entity of the menu.
//
// Key business rules:
//   - A dish has an immutable id and four mutable fields: name, description, price, image URL
//   - Text fields are never empty
//   - Price is an integer amount in the smallest currency unit and is greater than 0
//   - Updates replace all four mutable fields at once
//   - Dishes are never deleted
package dish
