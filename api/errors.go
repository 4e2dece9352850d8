package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrResourceMissing is wrapped by TransportError when the backend answered
// 2xx but sent no resource (empty body or JSON null).
var ErrResourceMissing = errors.New("resource missing from response")

// RequestError reports a reachable backend that answered with a non-2xx
// status. Status is kept for diagnostics only.
type RequestError struct {
	Method string
	Path   string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// TransportError reports a request that could not be completed: the
// endpoint was unreachable, the body could not be decoded, or the payload
// could not be encoded.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status carried by err, or 0 when err is not a
// RequestError.
func StatusOf(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
