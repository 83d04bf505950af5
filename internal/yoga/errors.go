package yoga

import (
	"errors"

	"github.com/woxQAQ/wasm-bundle/internal/flex"
)

// ErrorCode is the value held by a node's last-error register.
// Zero means the most recent operation on the node succeeded.
type ErrorCode uint32

const (
	ErrNone ErrorCode = iota
	// ErrNodeFreed is reported by any operation on a freed node, or when a
	// freed or nil node is passed as an argument.
	ErrNodeFreed
	// ErrUnknownValue is reported when an enum or edge code was outside its
	// table. The operation still applied the default.
	ErrUnknownValue
	ErrChildIndex
	ErrCycle
	ErrNotChild
	ErrNodeNotFound
	ErrInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "none"
	case ErrNodeFreed:
		return "node freed"
	case ErrUnknownValue:
		return "unknown value"
	case ErrChildIndex:
		return "child index out of range"
	case ErrCycle:
		return "cycle"
	case ErrNotChild:
		return "not a child"
	case ErrNodeNotFound:
		return "node not found"
	default:
		return "internal error"
	}
}

// codeOf classifies an engine error.
func codeOf(err error) ErrorCode {
	var (
		notFound *flex.NodeNotFoundError
		index    *flex.ChildIndexError
		cycle    *flex.CycleError
		notChild *flex.NotChildError
	)
	switch {
	case err == nil:
		return ErrNone
	case errors.As(err, &notFound):
		return ErrNodeNotFound
	case errors.As(err, &index):
		return ErrChildIndex
	case errors.As(err, &cycle):
		return ErrCycle
	case errors.As(err, &notChild):
		return ErrNotChild
	default:
		return ErrInternal
	}
}
