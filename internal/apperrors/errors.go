// Package apperrors holds the single failure kind surfaced by the data layer.
//
// Every database problem (connection lost, constraint violation, bad SQL)
// propagates as a DataAccessError. Callers do not branch on the cause; the
// HTTP layer reports all of them the same way.
package apperrors

import (
	"errors"
	"fmt"
)

// DataAccessError wraps any failure that happened while talking to the store.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Wrap tags err with the failing operation. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return err
	}
	return &DataAccessError{Op: op, Err: err}
}

// IsDataAccess reports whether err carries a DataAccessError.
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
