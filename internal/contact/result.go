package contact

import "errors"

// Status tags the outcome of a contact submission.
type Status int

const (
	StatusSuccess Status = iota + 1
	StatusRateLimited
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusRateLimited:
		return "rate_limited"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

const (
	// RateLimitedNotice tells the user when they may try again.
	RateLimitedNotice = "Too many requests. Please try again in an hour."

	// FailureNotice is shown for every failure that is not a rate limit.
	FailureNotice = "Failed to send message. Please try again."

	sentFallbackNotice = "Your message has been sent."
)

var (
	ErrRateLimited       = errors.New("contact intake rate limited")
	ErrBadStatus         = errors.New("contact intake returned non-success status")
	ErrMalformedResponse = errors.New("contact intake returned a malformed response")
	ErrTransport         = errors.New("contact intake request failed")
)

// Result is the outcome of one submission. Message carries the server confirmation on
// success and the generic reason otherwise; Err keeps the cause for diagnostics.
type Result struct {
	Status  Status
	Message string
	Err     error
}

// Success builds a successful result carrying the server confirmation message.
func Success(message string) Result {
	return Result{Status: StatusSuccess, Message: message}
}

// RateLimited builds the result for an HTTP 429 response.
func RateLimited() Result {
	return Result{Status: StatusRateLimited, Message: RateLimitedNotice, Err: ErrRateLimited}
}

// Failure builds a failed result. The user-facing reason is always the generic notice.
func Failure(cause error) Result {
	return Result{Status: StatusFailure, Message: FailureNotice, Err: cause}
}

// Succeeded reports whether the submission was accepted.
func (r Result) Succeeded() bool { return r.Status == StatusSuccess }

// Notice is the short human-readable feedback shown after a submission.
type Notice struct {
	Title       string
	Description string
	Destructive bool
}

// Notice maps the result onto the feedback shown to the user.
func (r Result) Notice() Notice {
	switch r.Status {
	case StatusSuccess:
		desc := r.Message
		if desc == "" {
			desc = sentFallbackNotice
		}
		return Notice{Title: "Message Sent!", Description: desc}
	case StatusRateLimited:
		return Notice{Title: "Error", Description: RateLimitedNotice, Destructive: true}
	default:
		return Notice{Title: "Error", Description: FailureNotice, Destructive: true}
	}
}
