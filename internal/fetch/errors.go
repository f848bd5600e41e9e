package fetch

import "errors"

// ErrEmptyBody is wrapped by FetchError when the response carried no body.
var ErrEmptyBody = errors.New("empty response body")

// FetchError describes a failed fetch. Its message is surfaced to end users,
// so it always reads "failed to load data: <reason>".
type FetchError struct {
	// Reason is the transport-level cause.
	Reason string

	// Err is the underlying error, if any.
	Err error

	timeout bool
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return "failed to load data: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the fetch failed because its deadline passed.
func (e *FetchError) Timeout() bool {
	return e.timeout
}
