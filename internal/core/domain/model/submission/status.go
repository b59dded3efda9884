package submission

import (
	"fmt"

	"burger/internal/pkg/errs"
)

// Status is the lifecycle state of an order submission.
//
// State transitions:
//
//	Idle ──> Pending ──┬──> Succeeded ──┐
//	  ^                └──> Failed ─────┤
//	  └─────────────── Dismiss / Reset ─┘
//
// Succeeded and Failed may also Start a new submission directly.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Idle means no submission is in flight and no outcome is shown.
	Idle

	// Pending means a placement request has been sent and not yet answered.
	Pending

	// Succeeded means the backend accepted the order and returned its number.
	Succeeded

	// Failed means the placement request was rejected or did not reach the backend.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Idle:      "Idle",
		Pending:   "Pending",
		Succeeded: "Succeeded",
		Failed:    "Failed",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions to Pending. It is rejected while a submission is already
// Pending.
func (s Status) Start() (Status, error) {
	if s != Idle && s != Succeeded && s != Failed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return Pending, nil
}

// Succeed transitions Pending to Succeeded.
func (s Status) Succeed() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to succeed", s.String()),
		)
	}
	return Succeeded, nil
}

// Fail transitions Pending to Failed.
func (s Status) Fail() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return Failed, nil
}

// IsTerminal reports whether the status carries an outcome.
func (s Status) IsTerminal() bool {
	return s == Succeeded || s == Failed
}
