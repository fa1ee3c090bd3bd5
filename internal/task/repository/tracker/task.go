package tracker

import (
	"context"

	"tasktracker-webui/internal/task/repository"
	pkgLog "tasktracker-webui/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new tracker-backed repository.
func New(client *Client, l pkgLog.Logger) repository.TrackerRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) error {
	req := AddTaskRequest{
		TaskName:       opt.Name,
		TaskStart:      opt.StartAt.Unix(),
		TaskRepeatInfo: opt.Rule.Parameter,
		TaskRepeatType: int(opt.Rule.Type),
	}

	if err := r.client.AddTask(ctx, req); err != nil {
		r.l.Errorf(ctx, "tracker repository: failed to add task: %v", err)
		return err
	}
	return nil
}
