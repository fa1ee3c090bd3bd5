package repository

import (
	"time"

	"tasktracker-webui/internal/model"
)

// CreateTaskOptions holds the parameters for one tracker add-task call.
type CreateTaskOptions struct {
	Name    string
	StartAt time.Time
	Rule    model.RecurrenceRule
}
