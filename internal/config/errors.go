package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVariable = errors.New("invalid environment variable")
	ErrMissingRegion   = errors.New("aws region not configured")
	ErrMissingVariable = errors.New("missing environment variable")
	ErrResolvingTopic  = errors.New("unable to resolve topic arn")
)

func ErrorInvalidVariable(name, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidVariable, name, value)
}

func ErrorMissingVariable(names ...string) error {
	return fmt.Errorf("%w: one of %v is required", ErrMissingVariable, names)
}

func ErrorResolvingTopic(topicName string, cause error) error {
	return fmt.Errorf("%w: topic=%s cause=%v", ErrResolvingTopic, topicName, cause)
}
