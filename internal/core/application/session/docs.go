// Package session owns the burger constructor state of one presentation
// session: the Assembly being built and the lifecycle of the order submitted
// from it.
//
// A Session is an explicitly constructed state container. Presentation code
// holds a *Session (or looks one up in a Registry) and drives it through
// AddPart, RemovePart, MoveFilling, Submit, Dismiss and Teardown. Every
// mutation runs under a single lock, so Snapshot and Subscribe never expose a
// half-applied transition.
//
// Submission rules:
//   - Submit without a base, or while a request is pending, is ignored silently
//   - Submit without an identity asks the AuthGate to redirect to login
//   - A failed order returns to Idle on its own after the dismiss delay
//   - Dismissing a successful order also clears the assembly
//   - Teardown returns to Idle and drops any response still on its way
package session
