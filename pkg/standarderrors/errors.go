// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package standarderrors defines the error taxonomy shared by the collection
// stores and the workflow engine.
//
// NotFound, ValidationFailure and DuplicateIdentity are recovered at the
// store boundary and returned as typed results; StorageFailure aborts the
// current operation; CascadeFailure is absorbed (logged, never surfaced) by
// the workflow engine.
package standarderrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references an id that does
	// not exist in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateIdentity is returned when an explicit id collides with an
	// existing record.
	ErrDuplicateIdentity = errors.New("duplicate record id")
)

// ValidationError reports malformed input (bad plate format, missing
// required field, illegal state transition).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}

	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError

	return errors.As(err, &ve)
}

// StorageError reports that the backing document of a collection could not
// be read, decoded or written. It always wraps the underlying cause.
type StorageError struct {
	Collection string
	Path       string
	Op         string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on collection %s (%s %s): %v", e.Collection, e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError for the given collection.
func NewStorageError(collection, op, path string, err error) *StorageError {
	return &StorageError{Collection: collection, Op: op, Path: path, Err: err}
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError

	return errors.As(err, &se)
}

// CascadeError reports a failed cross-collection cascade hook. It is logged
// by the workflow engine and never propagated to the caller of the primary
// mutation.
type CascadeError struct {
	Hook string
	Err  error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade hook %s failed: %v", e.Hook, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}
