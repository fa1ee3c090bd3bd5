package task

import "tasktracker-webui/internal/model"

// StartDate is the calendar date split out of the task_start field.
// Only the structural shape is checked at parse time; whether the date
// exists on the calendar is decided at instant composition.
type StartDate struct {
	Year  int
	Month int
	Day   int
}

// StartTime is the wall-clock time split out of the task_time field.
type StartTime struct {
	Hour   int
	Minute int
}

// CreateInput carries one raw form submission into the pipeline.
type CreateInput struct {
	Fields Fields
}

// CreateOutput reports the task that was forwarded to the tracker.
type CreateOutput struct {
	Task model.TaskCreation
}
