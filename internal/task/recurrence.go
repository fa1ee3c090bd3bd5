package task

import (
	"fmt"

	"tasktracker-webui/internal/model"
)

// repeatKeywords is the complete set of recurrence keywords the form can
// post, with the tracker rule each one encodes. Matching is exact and
// case-sensitive; there is no default row.
var repeatKeywords = map[string]model.RecurrenceRule{
	"daily":      {Type: model.RepeatSpecifiedDays, Parameter: 1234567},
	"weekly":     {Type: model.RepeatWithInterval, Parameter: 7},
	"weekdays":   {Type: model.RepeatSpecifiedDays, Parameter: 12345},
	"biweekly":   {Type: model.RepeatWithInterval, Parameter: 14},
	"once":       {Type: model.RepeatNone, Parameter: 0},
	"monthly":    {Type: model.RepeatMonthly, Parameter: 0},
	"four_weeks": {Type: model.RepeatWithInterval, Parameter: 28},
}

// ResolveRepeat maps the repeat_info field to its recurrence rule.
func ResolveRepeat(f Fields) (model.RecurrenceRule, error) {
	raw, ok := f[FieldRepeat]
	if !ok {
		return model.RecurrenceRule{}, newFieldError(ErrUnknownRepeatKeyword, FieldRepeat, "", ReasonMissing, "was not submitted")
	}

	rule, known := repeatKeywords[raw]
	if !known {
		detail := fmt.Sprintf("must be one of the recurrence keywords, %q is not", raw)
		return model.RecurrenceRule{}, newFieldError(ErrUnknownRepeatKeyword, FieldRepeat, raw, presenceReason(raw), detail)
	}
	return rule, nil
}
