package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/domain/model/submission"
	"burger/internal/core/ports"
	"burger/internal/pkg/errs"

	"github.com/jonboulle/clockwork"
)

// Session holds one Assembly and the submission lifecycle built on it.
//
// Example:
//
//	s := session.New(placer, gate)
//	_, _ = s.AddPart(bun)
//	_, _ = s.AddPart(cutlet)
//	switch s.Submit(ctx, "/") {
//	case session.SubmitStarted:
//	    // wait for Subscribe to report Succeeded or Failed
//	case session.SubmitLoginRequired:
//	    // the gate has been asked to redirect
//	}
type Session struct {
	mu sync.Mutex

	assembly *assembly.Assembly
	state    submission.State

	placer       ports.OrderPlacer
	gate         ports.AuthGate
	clock        clockwork.Clock
	dismissAfter time.Duration
	logger       *slog.Logger
	observer     Observer
	assemblyOpts []assembly.Option

	// generation identifies the latest request; responses from older ones are dropped
	generation   uint64
	dismissTimer clockwork.Timer

	subscribers  map[int]chan Snapshot
	nextSubscrID int
}

// New creates a Session with an empty assembly in the Idle state.
func New(placer ports.OrderPlacer, gate ports.AuthGate, opts ...Option) *Session {
	s := &Session{
		state:        submission.NewState(),
		placer:       placer,
		gate:         gate,
		clock:        clockwork.NewRealClock(),
		dismissAfter: DefaultDismissDelay,
		logger:       slog.Default().With("component", "Session"),
		observer:     noopObserver{},
		subscribers:  make(map[int]chan Snapshot),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.assembly = assembly.NewAssembly(s.assemblyOpts...)
	return s
}

// AddPart places a catalog part. A base replaces the current one.
func (s *Session) AddPart(part *catalog.Part) (assembly.SelectedPart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, err := s.assembly.AddPart(part)
	if err != nil {
		return assembly.SelectedPart{}, err
	}
	s.publish()
	return selected, nil
}

// RemovePart removes a filling by instance id and reports whether it existed.
func (s *Session) RemovePart(instanceID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.assembly.RemovePart(instanceID) {
		return false
	}
	s.publish()
	return true
}

// MoveFilling reorders fillings. Indices outside [0, FillingCount) are
// rejected with errs.ValueIsOutOfRangeError and leave the assembly untouched.
func (s *Session) MoveFilling(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.assembly.FillingCount() - 1
	if err := errors.Join(checkIndex("from", from, last), checkIndex("to", to, last)); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	s.assembly.MoveFilling(from, to)
	s.publish()
	return nil
}

func checkIndex(name string, idx, last int) error {
	if idx < 0 || idx > last {
		return errs.NewValueIsOutOfRangeError(name, idx, 0, last)
	}
	return nil
}

// Submit sends the current assembly as an order.
//
// The checks run in order and stop at the first that applies: no base, a
// request already pending, no signed-in identity. In the last case the gate
// is asked to redirect to login and come back to returnPath.
//
// On SubmitStarted the request runs in the background and its result is
// applied when it arrives. Cancelling ctx does not cancel the request.
func (s *Session) Submit(ctx context.Context, returnPath string) SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assembly.Base(); !ok {
		return s.ignore(ctx, SubmitIgnoredNoBase)
	}
	if s.state.IsLoading() {
		return s.ignore(ctx, SubmitIgnoredPending)
	}
	if s.gate.CurrentIdentity(ctx) == nil {
		s.gate.RedirectToLogin(ctx, returnPath)
		return s.ignore(ctx, SubmitLoginRequired)
	}

	req, err := s.assembly.OrderRequest()
	if err != nil {
		// unreachable: the base was checked above
		return s.ignore(ctx, SubmitIgnoredNoBase)
	}
	next, err := s.state.Start()
	if err != nil {
		return s.ignore(ctx, SubmitIgnoredPending)
	}

	s.stopDismissTimer()
	s.state = next
	s.generation++
	gen := s.generation
	startedAt := s.clock.Now()

	s.logger.InfoContext(ctx, "submission started", "generation", gen, "ingredients", req.Len())
	s.observer.SubmissionStarted()
	s.publish()

	go s.place(context.WithoutCancel(ctx), gen, req.IngredientIDs(), startedAt)
	return SubmitStarted
}

func (s *Session) ignore(ctx context.Context, result SubmitResult) SubmitResult {
	s.logger.DebugContext(ctx, "submission ignored", "reason", result.String())
	s.observer.SubmissionIgnored(result.String())
	return result
}

func (s *Session) place(ctx context.Context, gen uint64, ids []string, startedAt time.Time) {
	placed, placeErr := s.placer.PlaceOrder(ctx, ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || !s.state.IsLoading() {
		s.logger.InfoContext(ctx, "stale order response dropped", "generation", gen)
		return
	}
	elapsed := s.clock.Since(startedAt)

	if placeErr == nil {
		next, err := s.state.Succeed(placed.Number, placed.Name)
		if err == nil {
			s.state = next
			s.logger.InfoContext(ctx, "submission succeeded", "order_number", placed.Number, "name", placed.Name)
			s.observer.SubmissionSucceeded(elapsed)
			s.publish()
			return
		}
		placeErr = err
	}

	next, err := s.state.Fail(failureMessage(placeErr))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record submission failure", "error", err)
		return
	}
	s.state = next
	s.logger.ErrorContext(ctx, "submission failed", "error", placeErr)
	s.observer.SubmissionFailed(elapsed)
	s.startDismissTimer(gen)
	s.publish()
}

// failureMessage picks the text shown to the user. Only the backend's own
// message is shown; anything else gets the default message.
func failureMessage(err error) string {
	var orderErr *ports.OrderError
	if errors.As(err, &orderErr) {
		return orderErr.Message
	}
	return ""
}

func (s *Session) startDismissTimer(gen uint64) {
	s.stopDismissTimer()
	s.dismissTimer = s.clock.AfterFunc(s.dismissAfter, func() {
		s.autoDismiss(gen)
	})
}

func (s *Session) stopDismissTimer() {
	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
		s.dismissTimer = nil
	}
}

func (s *Session) autoDismiss(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.state.Status() != submission.Failed {
		return
	}
	s.dismissTimer = nil
	s.state = s.state.Dismiss()
	s.logger.Info("failed submission dismissed automatically", "generation", gen)
	s.publish()
}

// Dismiss acknowledges a finished submission. After a success the assembly is
// cleared as well. Idle and Pending sessions are left as they are.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.state.Status()
	if !status.IsTerminal() {
		return
	}

	s.stopDismissTimer()
	if status == submission.Succeeded {
		s.assembly.Clear()
	}
	s.state = s.state.Dismiss()
	s.publish()
}

// Teardown returns the submission to Idle whatever its state. A request still
// in flight is not cancelled; its response is ignored. The assembly is kept.
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardown()
}

func (s *Session) teardown() {
	if s.state.IsLoading() {
		s.logger.Info("teardown with request in flight", "generation", s.generation)
	}
	s.stopDismissTimer()
	s.generation++
	s.state = s.state.Reset()
	s.publish()
}

// Close tears the session down and closes every subscription.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardown()
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return takeSnapshot(s.assembly, s.state)
}

// Subscribe returns a channel that receives the current snapshot at once and
// then one after every change. A slow reader only ever sees the latest
// snapshot. cancel closes the channel.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubscrID
	s.nextSubscrID++
	ch := make(chan Snapshot, 1)
	ch <- takeSnapshot(s.assembly, s.state)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// publish must be called with mu held.
func (s *Session) publish() {
	if len(s.subscribers) == 0 {
		return
	}
	snap := takeSnapshot(s.assembly, s.state)
	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// replace the unread snapshot
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
