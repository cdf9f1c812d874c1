package innertube

import (
	"errors"
	"fmt"
)

// ErrNoBrowseTarget is returned when a browse is attempted with neither a
// browseId nor a continuation token. This is a caller contract violation
// and is rejected before any network I/O.
var ErrNoBrowseTarget = errors.New("browse requires a browseId or continuation token")

// TransportError indicates the HTTP exchange itself failed: dial, DNS,
// timeout, or a non-success status. StatusCode is zero when no response was
// received.
type TransportError struct {
	Endpoint   string
	Client     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("innertube %s: http status=%d client=%s", e.Endpoint, e.StatusCode, e.Client)
	}
	return fmt.Sprintf("innertube %s: client=%s: %v", e.Endpoint, e.Client, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError indicates the response body was not parseable as the
// expected structured form.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("innertube %s: decode: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RemoteError indicates a structured error payload from the remote.
type RemoteError struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("innertube %s: remote error %d: %s", e.Endpoint, e.Code, e.Message)
}
