package namesource

import "errors"

var (
	// ErrNoRecords is returned when a source yields no usable name records.
	ErrNoRecords = errors.New("no name records in input")
)
