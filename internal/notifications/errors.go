package notifications

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	ErrMissingMessageId     = errors.New("publish response has no message id")
	ErrNotificationDelivery = errors.New("notification delivery failed")
	ErrRenderingMessage     = errors.New("failed to render notification message")
)

// ErrorNotificationDelivery wraps both the delivery sentinel and the cause so
// callers can match either with errors.Is / errors.As.
func ErrorNotificationDelivery(topicArn string, cause error) error {
	var apiErr smithy.APIError
	if errors.As(cause, &apiErr) {
		return fmt.Errorf("%w: topic=%s code=%s: %w", ErrNotificationDelivery, topicArn, apiErr.ErrorCode(), cause)
	}
	return fmt.Errorf("%w: topic=%s: %w", ErrNotificationDelivery, topicArn, cause)
}

func ErrorRenderingMessage(cause error) error {
	return fmt.Errorf("%w: cause=%v", ErrRenderingMessage, cause)
}
