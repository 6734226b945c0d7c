package validation

import (
	"errors"
	"fmt"
)

// Categories surfaced to callers. Every parse failure matches ErrInvalidURL and
// every verdict rejection matches ErrHostRejected.
var (
	ErrInvalidURL   = errors.New("invalid image url provided")
	ErrHostRejected = errors.New("image url points to an unallowed host")
)

var (
	ErrEmptyURL              = errors.New("url is required")
	ErrURLTooLong            = errors.New("url exceeds maximum length")
	ErrInvalidURLFormat      = errors.New("invalid url format")
	ErrMissingScheme         = errors.New("url scheme is missing")
	ErrMissingHost           = errors.New("url host is missing")
	ErrInvalidPort           = errors.New("url port is invalid")
	ErrCredentialsNotAllowed = errors.New("url credentials not allowed")
)

var (
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrHostNotAllowed      = errors.New("url host not allowed")
	ErrPortNotAllowed      = errors.New("url port not allowed")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
)

func parseError(reason error) error {
	return fmt.Errorf("%w: %w", ErrInvalidURL, reason)
}

func rejection(reason error) error {
	return fmt.Errorf("%w: %w", ErrHostRejected, reason)
}
