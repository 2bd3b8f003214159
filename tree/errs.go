package tree

import (
	"fmt"
	"reflect"
)

// TypeError reports a traversal that reached a value whose type cannot
// support the requested operation, such as descending through a scalar
// during a dotted-key walk.
type TypeError struct {
	Path string // data path of the offending value (e.g. "a.b")
	Want Type
	Got  Type
}

func (e *TypeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("expected %s at %s, got %s", e.Want, e.Path, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// UnsupportedTypeError reports a Go value that has no representation in the
// node model.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type == nil {
		return "unsupported value"
	}
	return fmt.Sprintf("unsupported value of type %s", e.Type)
}
