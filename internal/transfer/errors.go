package transfer

import "errors"

// ErrEmptyInput is returned when an import source holds no JSON document
var ErrEmptyInput = errors.New("empty board file")
