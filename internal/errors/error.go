// Package errors provides custom error types for catalog operations.
package errors

import (
	"errors"
	"fmt"
)

var ErrStoreNotFound = errors.New("store not found")
var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateID = errors.New("product id already exists")
var ErrDuplicateName = errors.New("product name already exists")
var ErrWrite = errors.New("can't write product")
var ErrInvalidProduct = errors.New("invalid product")

// StoreNotFoundError reports that the backing file is absent.
type StoreNotFoundError struct {
	Path string
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("store %q not found", e.Path)
}

// Is reports whether target is ErrStoreNotFound.
func (e *StoreNotFoundError) Is(target error) bool {
	return target == ErrStoreNotFound
}

// Field names carried by DuplicateError.
const (
	FieldID   = "id"
	FieldName = "name"
)

// DuplicateError reports an insert rejected by the uniqueness check.
// Field is FieldID or FieldName, Value is the offending value.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("product with %s %q already exists", e.Field, e.Value)
}

// Is matches ErrDuplicateID or ErrDuplicateName depending on Field.
func (e *DuplicateError) Is(target error) bool {
	switch e.Field {
	case FieldID:
		return target == ErrDuplicateID
	case FieldName:
		return target == ErrDuplicateName
	}
	return false
}

// WriteError wraps the underlying I/O failure of an insert.
type WriteError struct {
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %v", ErrWrite, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
