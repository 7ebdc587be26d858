package client

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is the only session-fatal condition: the caller must
// re-authenticate before issuing further commands.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrCancelled reports a destructive action the user declined to confirm.
var ErrCancelled = errors.New("action cancelled")

// PermissionDenied reports a command the signed-in role may not perform.
// Detected client-side; the gateway is never contacted.
type PermissionDenied struct {
	Action Action
	Role   string
}

func (e *PermissionDenied) Error() string {
	return fmt.Sprintf("permission denied: role %q cannot %s", e.Role, e.Action)
}

// ValidationError reports a missing or invalid field, detected before any
// network call is issued.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestError carries a non-2xx server response: the server-supplied
// message when the body parsed as JSON, else a synthesized one.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NetworkError reports a transport failure where no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// InFlightError reports a second mutation attempted on an entity whose
// previous mutation has not resolved yet. No network call is issued.
type InFlightError struct {
	Kind EntityKind
	ID   string
}

func (e *InFlightError) Error() string {
	return fmt.Sprintf("%s %s already has an operation in flight", e.Kind, e.ID)
}
