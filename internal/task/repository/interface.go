package repository

import "context"

// TrackerRepository forwards finished task payloads to the task tracker.
type TrackerRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) error
}
