package domain

import "errors"

// Error kinds of a failed prediction. They're wrapped together with the cause, so use errors.Is to test for them.
var (
	ErrEmptyInput    = errors.New("no image provided")
	ErrDecodeImage   = errors.New("failed to decode image")
	ErrBuildRequest  = errors.New("failed to build upload request")
	ErrTransport     = errors.New("failed to reach inference endpoint")
	ErrReadBody      = errors.New("failed to read response body")
	ErrParseResponse = errors.New("failed to parse response")
)

// RemoteError is returned when the inference endpoint itself reports a failure. The message is shown to the user
// as is.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (r *RemoteError) Error() string {
	return r.Message
}
