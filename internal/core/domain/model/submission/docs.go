// Package submission models the lifecycle of a single order submission made
// from the burger constructor.
//
// The package includes:
//   - Status: the submission state machine
//   - State: an immutable snapshot of the lifecycle together with its outcome
//
// Key business rules:
//   - Only one submission may be in flight: Start is rejected while Pending
//   - A response is applied only to a Pending submission
//   - Succeeded carries a positive order number; Failed carries a message
//   - Dismiss and Reset both return to Idle and drop the outcome
package submission
