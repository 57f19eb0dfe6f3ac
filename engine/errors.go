package engine

import (
	"errors"
	"fmt"
)

// Two sentinel base errors distinguish the error handling design's two
// categories: callers can re-validate and retry ErrInvalidInput, but
// ErrOperationFailed represents mathematical infeasibility that retrying
// the same input cannot fix. Every operation-specific detail is wrapped
// onto one of these via fmt.Errorf("%w: ...", ...), never returned bare.
var (
	// ErrInvalidInput indicates the caller supplied an ill-formed input:
	// too few vertices, a non-positive half-width, a zero-length segment,
	// or consecutive coincident vertices.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOperationFailed indicates the requested geometric operation is
	// not realizable for otherwise well-formed input: an arc collapsed
	// under offset, all slices filtered away, or boundary tracing
	// produced no closed output.
	ErrOperationFailed = errors.New("operation failed")
)

// wrapInvalid formats a detail message and wraps it onto ErrInvalidInput.
func wrapInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// wrapFailed formats a detail message and wraps it onto ErrOperationFailed.
func wrapFailed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOperationFailed}, args...)...)
}
