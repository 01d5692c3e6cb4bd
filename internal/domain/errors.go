package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a row with the same key already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConstraint indicates the storage rejected a value (unknown reference, missing
	// mandatory column, value too long).
	ErrConstraint = errors.New("constraint violation")
)
