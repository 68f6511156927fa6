package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when an operation requires a live connection
	ErrNotConnected = errors.New("not connected to Telegram")

	// ErrNotAuthorized is returned when the stored session is missing or
	// expired. It is fatal at startup: the service refuses to start and the
	// session must be provisioned again with cmd/tglogin.
	ErrNotAuthorized = errors.New("telegram session is not authorized, run tglogin first")

	// ErrMediaNotFound is returned when the target message does not exist or
	// carries no downloadable attachment
	ErrMediaNotFound = errors.New("media not found")
)

// ChannelResolutionError wraps any failure to map a user-supplied identifier
// to a concrete channel, so callers can catalog per-channel failures
// uniformly.
type ChannelResolutionError struct {
	Identifier string
	Err        error
}

func (e *ChannelResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve channel %q: %v", e.Identifier, e.Err)
}

func (e *ChannelResolutionError) Unwrap() error {
	return e.Err
}

// NewChannelResolutionError wraps err with the identifier that failed to resolve
func NewChannelResolutionError(identifier string, err error) *ChannelResolutionError {
	return &ChannelResolutionError{Identifier: identifier, Err: err}
}
