package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrOrder matches every OrderError via errors.Is.
var ErrOrder = errors.New("order placement failed")

// PlacedOrder is the backend's answer to an accepted order.
type PlacedOrder struct {
	Number int
	// Name is the burger name generated by the backend; may be empty.
	Name string
}

// OrderPlacer submits an order request to the backend.
type OrderPlacer interface {
	// PlaceOrder sends the ordered catalog ids, base id first and last.
	// Rejections are reported as *OrderError.
	PlaceOrder(ctx context.Context, ingredientIDs []string) (PlacedOrder, error)
}

// OrderError carries the text to show the user when an order is rejected.
// Message may be empty when the backend gave none.
type OrderError struct {
	Message string
	Cause   error
}

func NewOrderError(message string, cause error) *OrderError {
	return &OrderError{Message: message, Cause: cause}
}

func (e *OrderError) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s (cause: %v)", ErrOrder, e.Message, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", ErrOrder, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", ErrOrder, e.Cause)
	default:
		return ErrOrder.Error()
	}
}

func (e *OrderError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrOrder}
	}
	return []error{ErrOrder, e.Cause}
}
