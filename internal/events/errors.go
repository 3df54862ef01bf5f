package events

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedEvent = errors.New("malformed event")
)

func ErrorMalformedEvent(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedEvent, reason)
}

func ErrorDecodingEvent(cause error) error {
	return fmt.Errorf("%w: cause=%v", ErrMalformedEvent, cause)
}

// ErrorMalformedKey keeps the decoding cause matchable with errors.Is.
func ErrorMalformedKey(cause error) error {
	return fmt.Errorf("%w: %w", ErrMalformedEvent, cause)
}

func ErrorMissingField(path string) error {
	return fmt.Errorf("%w: missing field %s", ErrMalformedEvent, path)
}
