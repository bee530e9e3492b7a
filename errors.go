package sicar

import (
	"errors"
	"fmt"
)

// Precondition failures. These surface immediately from the public API,
// before any attempt budget is spent.
var (
	ErrUnknownState    = errors.New("unknown state code")
	ErrInvalidCityCode = errors.New("invalid city code")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidEmail    = errors.New("invalid email")
)

// ErrCaptchaFetch marks a failed challenge image acquisition. The download
// loop absorbs it and retries with a fresh challenge.
var ErrCaptchaFetch = errors.New("captcha fetch failed")

// StatusError is a portal exchange that came back with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s HTTP %d", e.URL, e.StatusCode)
}

// FetchReason categorizes rejected artifact exchanges for targeted handling.
type FetchReason int

const (
	FetchTransport FetchReason = iota // transport failure or non-2xx status
	FetchEmptyBody                    // declared Content-Length of zero
	FetchWrongType                    // HTML or other unexpected payload type
)

func (r FetchReason) String() string {
	switch r {
	case FetchTransport:
		return "transport"
	case FetchEmptyBody:
		return "empty body"
	case FetchWrongType:
		return "wrong content type"
	}
	return "unknown"
}

// FetchError is an artifact exchange the portal answered but did not honor,
// usually a disguised captcha rejection. The download loop absorbs these and
// retries with a fresh challenge.
type FetchError struct {
	URL    string
	Reason FetchReason
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }
