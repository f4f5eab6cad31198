package services

import "errors"

var (
	// ErrDuplicate is returned when a create or update collides with a
	// uniqueness constraint, e.g. an already-taken login handle.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidReference is returned when a row points at a gamer that
	// does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
