package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced tracker or category does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a category title collided on create.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidModel means the caller supplied malformed filter or
	// schedule data.
	ErrInvalidModel = errors.New("invalid model")
)

// PersistenceError wraps an underlying store failure. Domain errors
// (ErrNotFound, ErrDuplicate, ErrInvalidModel) are never wrapped; a
// PersistenceError always means the store itself misbehaved.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Wrap classifies an error at the store boundary: domain errors pass
// through untouched, anything else becomes a PersistenceError.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidModel) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
