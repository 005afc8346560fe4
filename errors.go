// Package extensions holds the error kinds shared by the container helper
// packages in this module. Every error returned by random, linkedlist and
// collections wraps one of these sentinels, so callers can classify failures
// with errors.Is without matching message text.
package extensions

import "errors"

var (
	// ErrInvalidArgument reports an absent or invalid required input, such as
	// a nil list or selector function. It is always raised before any
	// mutation, so a failed call never leaves a container half-modified.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports a precondition violation on the data itself,
	// such as a weighted pick over an empty set or a weight sum of zero.
	ErrInvalidState = errors.New("invalid state")
)
