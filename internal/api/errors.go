package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransportError wraps a failure to reach the clinic service at all:
// DNS, connection refused, timeout. No response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-2xx response from the clinic service. Body is
// the raw response body, kept for the observability sink and for
// message extraction on login failures.
type RemoteError struct {
	Op     string
	Status int
	Body   []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: service returned status %d: %s", e.Op, e.Status, e.Body)
}

// Message extracts the service's "message" field from the error body.
// Returns "" when the body has none or is not JSON.
func (e *RemoteError) Message() string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}

	return payload.Message
}

// LoginFailureMessage renders an error from Login for the entry
// screen: the service's own message when it sent one, otherwise a
// generic line.
func LoginFailureMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		if msg := remote.Message(); msg != "" {
			return msg
		}

		return "Invalid credentials"
	}

	return "An error occurred. Please try again."
}
