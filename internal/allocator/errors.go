package allocator

import (
	"fmt"
	"runtime"
)

// Kind classifies the failure modes an Arena can raise. It mirrors the
// category/code split used across the rest of the runtime's error
// reporting, narrowed to the three kinds this package actually needs.
type Kind string

const (
	KindConfig          Kind = "CONFIG"
	KindOutOfMemory     Kind = "OUT_OF_MEMORY"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
)

// AllocatorError is the concrete error type returned by every fallible
// Arena operation. Context carries the values that led to the failure so
// callers (and tests) can inspect them without parsing Error().
type AllocatorError struct {
	Kind    Kind
	Message string
	Context map[string]any
	Caller  string
}

func (e *AllocatorError) Error() string {
	if e.Caller == "" {
		return fmt.Sprintf("allocator: [%s] %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("allocator: [%s] %s (at %s)", e.Kind, e.Message, e.Caller)
}

// Is lets errors.Is(err, ErrOutOfMemory) match any AllocatorError of the
// same Kind, not just the exact sentinel instance.
func (e *AllocatorError) Is(target error) bool {
	t, ok := target.(*AllocatorError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinels for errors.Is against a Kind regardless of Message/Context.
var (
	ErrConfig          = &AllocatorError{Kind: KindConfig, Message: "invalid arena configuration"}
	ErrOutOfMemory     = &AllocatorError{Kind: KindOutOfMemory, Message: "no free block large enough"}
	ErrInvalidArgument = &AllocatorError{Kind: KindInvalidArgument, Message: "pointer is not a live allocation owned by this arena"}
)

func newError(kind Kind, msg string, ctx map[string]any) *AllocatorError {
	caller := "unknown"

	if pc, _, _, ok := runtime.Caller(2); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &AllocatorError{Kind: kind, Message: msg, Context: ctx, Caller: caller}
}

// NewConfigError reports a construction-time capacity/alignment failure.
func NewConfigError(msg string, ctx map[string]any) *AllocatorError {
	return newError(KindConfig, msg, ctx)
}

// NewOutOfMemory reports that Allocate found no sufficiently large free block.
func NewOutOfMemory(msg string, ctx map[string]any) *AllocatorError {
	return newError(KindOutOfMemory, msg, ctx)
}

// NewInvalidArgument reports a Deallocate call on an unrecognised pointer.
func NewInvalidArgument(msg string, ctx map[string]any) *AllocatorError {
	return newError(KindInvalidArgument, msg, ctx)
}
