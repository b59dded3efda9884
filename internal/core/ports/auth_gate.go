package ports

import "context"

// Identity is the authenticated user behind a request.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// AuthGate decides whether the caller may place orders.
type AuthGate interface {
	// CurrentIdentity returns nil when nobody is signed in.
	CurrentIdentity(ctx context.Context) *Identity

	// RedirectToLogin asks the presentation to open the login flow and come
	// back to returnPath afterwards.
	RedirectToLogin(ctx context.Context, returnPath string)
}
