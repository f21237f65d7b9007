package backend

import (
	"errors"
	"fmt"
)

// User-facing auth failures keep the literal German wording from the
// dashboard; everything else carries the server-supplied message when there is
// one.
var (
	ErrAuthenticationRequired = errors.New("Bitte melden Sie sich an, um fortzufahren.")
	ErrForbidden              = errors.New("Sie haben keine Berechtigung für diese Aktion.")
)

// RequestError is any non-success outcome that is neither a 401 nor a 403:
// a non-2xx status, or a 2xx whose envelope reports success=false.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// MalformedResponseError is a 2xx response whose body cannot be decoded as the
// expected envelope. It must never surface as a raw decode panic to callers.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed backend response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// synthesizedMessage builds the fallback message from the HTTP status line
// when the error body carries no usable message.
func synthesizedMessage(statusText string, code int) string {
	return fmt.Sprintf("Server error: %s (Status: %d)", statusText, code)
}
