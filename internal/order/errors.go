package order

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyOrder means an order would be created with no products. Orders
// never shed products after creation, so this only guards construction.
var ErrEmptyOrder = errors.New("order has no products")

// InvalidTransitionError reports a state change attempted from a state that
// does not permit it. It is surfaced to the caller and never retried.
type InvalidTransitionError struct {
	OrderID   string
	From      Status
	Attempted Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot move to %s from %s", e.OrderID, e.Attempted, e.From)
}

// LateReturnError reports a return attempted after the 48-hour window.
// The order stays DELIVERED.
type LateReturnError struct {
	OrderID     string
	DeliveredAt time.Time
	AttemptedAt time.Time
}

func (e *LateReturnError) Error() string {
	return fmt.Sprintf("order %s: return window closed (delivered %s, attempted %s)",
		e.OrderID, e.DeliveredAt.Format(time.RFC3339), e.AttemptedAt.Format(time.RFC3339))
}
