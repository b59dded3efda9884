package session

// SubmitResult tells the caller what Submit did. Only SubmitStarted changes
// the submission state.
type SubmitResult int

const (
	// SubmitStarted means the order request was sent and the submission is Pending.
	SubmitStarted SubmitResult = iota + 1

	// SubmitIgnoredNoBase means there is no base selected.
	SubmitIgnoredNoBase

	// SubmitIgnoredPending means another request is still in flight.
	SubmitIgnoredPending

	// SubmitLoginRequired means nobody is signed in; the AuthGate was asked to
	// redirect to login.
	SubmitLoginRequired
)

var submitResultNames = map[SubmitResult]string{
	SubmitStarted:        "started",
	SubmitIgnoredNoBase:  "no_base",
	SubmitIgnoredPending: "pending",
	SubmitLoginRequired:  "login_required",
}

func (r SubmitResult) String() string {
	if name, ok := submitResultNames[r]; ok {
		return name
	}
	return "unknown"
}
