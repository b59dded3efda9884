package session

import "time"

// Observer receives submission outcomes, typically for metrics.
// Calls are made with the session lock held and must not block.
type Observer interface {
	SubmissionStarted()
	SubmissionSucceeded(elapsed time.Duration)
	SubmissionFailed(elapsed time.Duration)
	SubmissionIgnored(reason string)
}

type noopObserver struct{}

func (noopObserver) SubmissionStarted()                {}
func (noopObserver) SubmissionSucceeded(time.Duration) {}
func (noopObserver) SubmissionFailed(time.Duration)    {}
func (noopObserver) SubmissionIgnored(string)          {}
