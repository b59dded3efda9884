// Package errs provides the typed errors shared by the burger constructor packages.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange, ErrObjectNotFound)
//   - a struct carrying the offending parameter and an optional cause
//   - New... and New...WithCause constructors
//   - Unwrap returning the sentinel, so callers classify with errors.Is
//
// Values embedded in messages are flattened to a single line.
package errs
