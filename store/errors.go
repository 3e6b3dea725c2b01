package store

import "errors"

var (
	// ErrNotFound means no document matched the given id or filter.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID means the supplied id is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicate means a unique index rejected the write.
	ErrDuplicate = errors.New("duplicate")
)
