package events

import "errors"

// ErrBusClosed is returned when publishing on a bus that has been closed
var ErrBusClosed = errors.New("event bus closed")
