package usecase

import (
	"context"

	"tasktracker-webui/internal/task"
	"tasktracker-webui/internal/task/repository"
)

// Create runs one form submission through the pipeline. Validation runs in
// form order (start date, start time, task name, repeat keyword) and stops
// at the first bad field; nothing reaches the tracker unless every check
// and the instant composition succeed.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	fields := input.Fields

	// Step 1: validate the four fields
	date, err := task.ParseStartDate(fields)
	if err != nil {
		return task.CreateOutput{}, err
	}

	tod, err := task.ParseStartTime(fields)
	if err != nil {
		return task.CreateOutput{}, err
	}

	name, err := task.ValidateName(fields)
	if err != nil {
		return task.CreateOutput{}, err
	}

	rule, err := task.ResolveRepeat(fields)
	if err != nil {
		return task.CreateOutput{}, err
	}

	// Step 2: compose the start instant and build the outbound payload
	creation, err := task.Translate(uc.composer, date, tod, name, rule)
	if err != nil {
		return task.CreateOutput{}, err
	}

	// Step 3: forward to the tracker
	if err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Name:    creation.Name,
		StartAt: creation.StartAt,
		Rule:    creation.Rule,
	}); err != nil {
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: forwarded task %q start=%d repeat=%s", creation.Name, creation.StartAt.Unix(), creation.Rule.Type)

	return task.CreateOutput{Task: creation}, nil
}
