package vision

import "time"

const (
	// DefaultTimeout bounds a single inference call
	DefaultTimeout = 30 * time.Second
)
