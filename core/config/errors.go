package config

import "errors"

// ErrNilConfig is returned when Load receives a nil destination pointer.
var ErrNilConfig = errors.New("config: nil destination")
