package board

import "errors"

// Board-related errors
var (
	// Lookup errors
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")

	// Integrity errors reported by Validate
	ErrDuplicateID = errors.New("duplicate id")
	ErrOrphanTask  = errors.New("task references a missing column")
	ErrEmptyID     = errors.New("id cannot be empty")
)
