package submission

import (
	"fmt"

	"burger/internal/pkg/errs"
)

// DefaultFailureMessage is shown when a failure carries no text of its own.
const DefaultFailureMessage = "Failed to create order"

// State is an immutable view of one submission lifecycle. The zero value is
// not valid; start from NewState().
//
// Transitions return a new State and leave the receiver untouched.
type State struct {
	status      Status
	orderNumber int
	orderName   string
	message     string
}

// NewState returns the initial Idle state.
func NewState() State {
	return State{status: Idle}
}

// Status returns the lifecycle status.
func (s State) Status() Status {
	return s.status
}

// Start moves to Pending and drops any previous outcome.
func (s State) Start() (State, error) {
	status, err := s.status.Start()
	if err != nil {
		return s, err
	}
	return State{status: status}, nil
}

// Succeed records the backend order number. Numbers must be positive.
func (s State) Succeed(number int, name string) (State, error) {
	status, err := s.status.Succeed()
	if err != nil {
		return s, err
	}
	if number <= 0 {
		return s, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d is not positive", number))
	}
	return State{status: status, orderNumber: number, orderName: name}, nil
}

// Fail records the failure message, or DefaultFailureMessage when it is empty.
func (s State) Fail(message string) (State, error) {
	status, err := s.status.Fail()
	if err != nil {
		return s, err
	}
	if message == "" {
		message = DefaultFailureMessage
	}
	return State{status: status, message: message}, nil
}

// Dismiss clears a shown outcome. Idle and Pending are returned unchanged.
func (s State) Dismiss() State {
	if !s.status.IsTerminal() {
		return s
	}
	return NewState()
}

// Reset returns to Idle from any state.
func (s State) Reset() State {
	return NewState()
}

// IsLoading is true while the placement request is in flight.
func (s State) IsLoading() bool {
	return s.status == Pending
}

// ShowOrderModal is true once an order number is known.
func (s State) ShowOrderModal() bool {
	return s.status == Succeeded
}

// OrderNumber returns the accepted order number.
func (s State) OrderNumber() (int, bool) {
	if s.status != Succeeded {
		return 0, false
	}
	return s.orderNumber, true
}

// OrderName returns the name the backend gave the burger, if any.
func (s State) OrderName() string {
	return s.orderName
}

// ErrorMessage returns the failure text.
func (s State) ErrorMessage() (string, bool) {
	if s.status != Failed {
		return "", false
	}
	return s.message, true
}
