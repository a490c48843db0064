package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the query.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by stores on uniqueness violations.
	ErrConflict = errors.New("already exists")
)

// ConflictError reports which unique user field collided on insert.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already exists"
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
