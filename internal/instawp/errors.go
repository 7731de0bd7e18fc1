package instawp

import "fmt"

// TransportError is returned when a request could not be completed or the
// API answered with a non-2xx status
type TransportError struct {
	// Op names the client operation, e.g. createSiteGit
	Op string

	// StatusCode is 0 when no response was received
	StatusCode int

	// Status is the reason phrase for StatusCode
	Status string

	Err error
}

// Error implements the error interface for TransportError
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("[%s] request failed: %v", e.Op, e.Err)
	}
	if e.Status == "" {
		return fmt.Sprintf("[%s] request failed: HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("[%s] request failed: HTTP %d %s", e.Op, e.StatusCode, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body is not valid JSON
type DecodeError struct {
	Op  string
	Err error
}

// Error implements the error interface for DecodeError
func (e *DecodeError) Error() string {
	return fmt.Sprintf("[%s] error parsing JSON from response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
