package session

import (
	"log/slog"
	"time"

	"burger/internal/core/domain/model/assembly"

	"github.com/jonboulle/clockwork"
)

// DefaultDismissDelay is how long a failed submission stays visible.
const DefaultDismissDelay = 5 * time.Second

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the clock used for the auto-dismiss timer and latency.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithDismissDelay overrides DefaultDismissDelay. Non-positive values are ignored.
func WithDismissDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.dismissAfter = d
		}
	}
}

// WithLogger sets the logger; the session adds its own component attribute.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger.With("component", "Session")
	}
}

// WithObserver reports submission outcomes to observer.
func WithObserver(observer Observer) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// WithAssemblyOptions passes options through to the underlying Assembly.
func WithAssemblyOptions(opts ...assembly.Option) Option {
	return func(s *Session) {
		s.assemblyOpts = append(s.assemblyOpts, opts...)
	}
}
