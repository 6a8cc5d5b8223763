package order

import "time"

// Change names what happened to an order.
type Change string

const (
	ChangeCreated Change = "created"
	ChangeUpdated Change = "updated"
	ChangeDeleted Change = "deleted"
)

// ChangedEvent is emitted after an order change has been committed.
type ChangedEvent struct {
	OrderID    string    `json:"orderId"`
	Status     Status    `json:"status"`
	Change     Change    `json:"change"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewChangedEvent captures the state of o at the moment of change.
func NewChangedEvent(o *Order, change Change) ChangedEvent {
	return ChangedEvent{
		OrderID:    o.ID().String(),
		Status:     o.Status(),
		Change:     change,
		OccurredAt: time.Now().UTC(),
	}
}
