// Package order provides the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding delivery details, line items and status
//   - LineItem: a dish id with a positive quantity
//   - Status: pending, preparing, out-for-delivery, delivered
//   - ChangedEvent: the notification emitted after a committed change
//
// Key business rules:
//   - Orders have at least one line item and every quantity is greater than 0
//   - New orders start pending unless a status is supplied
//   - Any non-terminal status may change to any recognized status
//   - Delivered is terminal: a delivered order can be neither changed nor deleted
//   - Only pending orders can be deleted
package order
