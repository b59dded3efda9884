// Package auth implements the session/auth gate on top of bearer access
// tokens. The HTTP layer puts the caller's Authorization header into the
// request context; the Gate reads the identity from it.
package auth

import (
	"context"
	"sync"
)

type tokenKey struct{}

type redirectKey struct{}

// WithToken stores the raw Authorization header value ("Bearer <jwt>").
func WithToken(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, tokenKey{}, header)
}

// TokenFromContext returns the stored Authorization header, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Redirect records a login redirect requested while handling one request.
type Redirect struct {
	mu        sync.Mutex
	from      string
	requested bool
}

// WithRedirect attaches an empty Redirect to ctx.
func WithRedirect(ctx context.Context) (context.Context, *Redirect) {
	r := &Redirect{}
	return context.WithValue(ctx, redirectKey{}, r), r
}

// Requested returns the path to come back to after login, if a redirect was asked for.
func (r *Redirect) Requested() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.from, r.requested
}

func (r *Redirect) request(from string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.from = from
	r.requested = true
}

func redirectFromContext(ctx context.Context) *Redirect {
	r, _ := ctx.Value(redirectKey{}).(*Redirect)
	return r
}
