package repository

import (
	"errors"
	"fmt"
)

// ErrTrackerUnreachable marks connection-level failures talking to the
// tracker API: refused, timed out, DNS. The tracker answering with a bad
// status is a *StatusError instead.
var ErrTrackerUnreachable = errors.New("task tracker API unreachable")

// StatusError is a non-200 answer from the tracker API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("task tracker API error %d: %s", e.Code, e.Body)
}
