// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package predictor

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrTransport is matched by every TransportError.
var ErrTransport = errors.New("prediction service request failed")

// TransportError is returned when the call to the prediction service fails
// or the service reports a failure for the call as a whole.
type TransportError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Message is the service-provided message, if the body carried one.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("prediction service error (status %d): %s", e.StatusCode, e.Message)
	case e.Timeout():
		return fmt.Sprintf("prediction service timed out: %v", e.Err)
	case e.Err != nil && e.StatusCode == 0:
		return fmt.Sprintf("prediction service unreachable: %v", e.Err)
	case e.Err != nil:
		return fmt.Sprintf("prediction service error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("prediction service error (status %d)", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call gave up waiting for the service.
func (e *TransportError) Timeout() bool {
	return IsTimeout(e.Err)
}

// IsTimeout reports whether err comes from a request deadline, either the
// caller's context or the HTTP client timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Is makes errors.Is(err, ErrTransport) match.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// MessageOr returns the service-provided message carried by err, or fallback
// when err carries none.
func MessageOr(err error, fallback string) string {
	var tErr *TransportError
	if errors.As(err, &tErr) && tErr.Message != "" {
		return tErr.Message
	}
	return fallback
}
