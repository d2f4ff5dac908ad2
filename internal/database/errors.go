package database

import "errors"

var (
	// ErrCorruptState indicates stored bytes that do not decode into a sequence
	ErrCorruptState = errors.New("stored board state is corrupt")

	// ErrUnknownDriver is returned by Open for an unsupported storage driver
	ErrUnknownDriver = errors.New("unknown storage driver")
)
