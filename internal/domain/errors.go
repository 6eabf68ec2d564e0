package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid wraps input validation failures.
	ErrInvalid = errors.New("invalid input")
)
