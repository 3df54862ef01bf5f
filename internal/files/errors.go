package files

import (
	"errors"
	"fmt"
)

var (
	ErrDecodingKey = errors.New("failed to decode object key")
)

func ErrorDecodingKey(key string, cause error) error {
	return fmt.Errorf("%w: key=%s cause=%v", ErrDecodingKey, key, cause)
}
