package api

import "fmt"

// The client surfaces exactly four failure classes. Callers branch with
// errors.As; messages are user-facing.

// ValidationError reports missing or empty required input. Raised before
// any network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AuthError is a non-2xx response carrying a detail payload. Detail is
// already normalized to a single string (see errorBody).
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server error: %d", e.Status)
	}
	return e.Detail
}

// NetworkError means no response was received. Endpoint carries the
// attempted base URL so misconfigured connectivity is diagnosable.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("no response from %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means a response arrived but its body did not decode as
// the endpoint's expected JSON shape.
type ProtocolError struct {
	Path string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %v", e.Path, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
