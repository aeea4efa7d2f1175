// Package common defines shared sentinel errors and small helpers used across
// the registry layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors. Concrete failures wrap one of these together with
	// the underlying OS or decoding error.
	ErrRead  = errors.New("error reading user registry")
	ErrWrite = errors.New("error saving user registry")

	// Lookup outcome for search and delete.
	ErrorNotFound = errors.New("not found")

	// Input rejected by field validation.
	ErrValidation = errors.New("validation error")
)
