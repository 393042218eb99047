package pipeline

import "errors"

var (
	// ErrNoPatterns is returned when a pipeline is built with zero compiled
	// patterns. A run that cannot produce output is an error, never a
	// silent success.
	ErrNoPatterns = errors.New("no compiled patterns")

	// ErrSourceNil is returned when the record source is nil.
	ErrSourceNil = errors.New("record source cannot be nil")

	// ErrDestinationNil is returned when the destination writer is nil.
	ErrDestinationNil = errors.New("destination writer cannot be nil")

	// ErrAlreadyRunning is returned when Run is called while another Run is
	// still in flight.
	ErrAlreadyRunning = errors.New("pipeline already running")
)
