package translator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTranslator = errors.New("invalid translator configuration")
)

func ErrorInvalidTranslator(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTranslator, reason)
}
