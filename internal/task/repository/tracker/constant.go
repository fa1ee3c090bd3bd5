package tracker

import "time"

const (
	// DefaultTimeout bounds every add-task call, connection and body included.
	DefaultTimeout = 10 * time.Second
)
