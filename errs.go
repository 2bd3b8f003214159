package tomltree

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned by Save on a Config with no origin path recorded.
// Only configs produced by Load carry one; use SaveToFile instead.
var ErrNoPath = errors.New("original path not available, use SaveToFile")

// KeyError reports a key or dotted key that is not bound. Key is always the
// originally requested key string.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q does not exist", e.Key)
}
