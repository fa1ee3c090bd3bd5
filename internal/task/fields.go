package task

// Form field names accepted by the task entry form.
const (
	FieldStart  = "task_start"
	FieldTime   = "task_time"
	FieldName   = "task_name"
	FieldRepeat = "repeat_info"
)

// Fields is one raw form submission, field name to value as posted.
// A field that was never posted has no key at all, which is how the
// validators tell a missing field from an empty one.
type Fields map[string]string
