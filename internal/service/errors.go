package service

import "errors"

var (
	// ErrValidation is returned when a required field is empty after sanitization
	ErrValidation = errors.New("required field missing")
	// ErrDuplicate is returned when a recipe with the same name already exists for a mood
	ErrDuplicate = errors.New("recipe already exists for mood")
	// ErrNotFound is returned when no recipe matches a lookup
	ErrNotFound = errors.New("recipe not found")
)

// StorageError wraps a failure of the underlying database. Its message is the
// driver's message so callers can pass it through unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
