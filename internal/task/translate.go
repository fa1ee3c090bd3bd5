package task

import (
	"fmt"

	"tasktracker-webui/internal/model"
	"tasktracker-webui/pkg/datetime"
)

// Translate composes the validated parts into the outbound task payload.
// The structural parse admits impossible calendar dates, so composition is
// where February 30th or hour 25 finally fail; any such failure is
// reported as an invalid start date on the task_start field.
func Translate(c *datetime.Composer, date StartDate, tod StartTime, name string, rule model.RecurrenceRule) (model.TaskCreation, error) {
	startAt, err := c.Compose(date.Year, date.Month, date.Day, tod.Hour, tod.Minute)
	if err != nil {
		value := fmt.Sprintf("%d-%d-%d %d:%d", date.Year, date.Month, date.Day, tod.Hour, tod.Minute)
		return model.TaskCreation{}, newFieldError(ErrInvalidStartDate, FieldStart, value, ReasonMalformed, "does not denote a real calendar time")
	}

	return model.TaskCreation{
		Name:    name,
		StartAt: startAt,
		Rule:    rule,
	}, nil
}
