package task

import "context"

// UseCase is the submission pipeline for the task domain: validate the raw
// form fields, translate them into the tracker schema, and forward the
// result to the tracker API.
type UseCase interface {
	// Create runs one form submission end to end. The returned error is a
	// *FieldError for validation failures and a repository error when the
	// tracker call fails.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
}
