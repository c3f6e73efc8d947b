package config

import "errors"

// ErrNilConfig is returned when a nil destination is passed to a loader.
var ErrNilConfig = errors.New("config: nil destination")
