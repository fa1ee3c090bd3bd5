package task

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseStartDate checks the task_start field against the year-month-day
// shape: exactly three dash-separated integers, any width, any sign.
// Calendar feasibility (month 13, February 30th) is deliberately not
// checked here; Translate rejects those when composing the instant.
func ParseStartDate(f Fields) (StartDate, error) {
	raw, ok := f[FieldStart]
	if !ok {
		return StartDate{}, newFieldError(ErrInvalidStartDate, FieldStart, "", ReasonMissing, "was not submitted")
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 3 {
		detail := fmt.Sprintf("must be year-month-day, found %d part(s) instead of 3", len(parts))
		return StartDate{}, newFieldError(ErrInvalidStartDate, FieldStart, raw, presenceReason(raw), detail)
	}

	nums, err := atoiParts(parts)
	if err != nil {
		return StartDate{}, newFieldError(ErrInvalidStartDate, FieldStart, raw, ReasonMalformed, err.Error())
	}

	return StartDate{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

// ParseStartTime checks the task_time field against the hour:minute shape:
// exactly two colon-separated integers. Range checking (hour 25) is left
// to instant composition, same as the date.
func ParseStartTime(f Fields) (StartTime, error) {
	raw, ok := f[FieldTime]
	if !ok {
		return StartTime{}, newFieldError(ErrInvalidStartTime, FieldTime, "", ReasonMissing, "was not submitted")
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		detail := fmt.Sprintf("must be hour:minute, found %d part(s) instead of 2", len(parts))
		return StartTime{}, newFieldError(ErrInvalidStartTime, FieldTime, raw, presenceReason(raw), detail)
	}

	nums, err := atoiParts(parts)
	if err != nil {
		return StartTime{}, newFieldError(ErrInvalidStartTime, FieldTime, raw, ReasonMalformed, err.Error())
	}

	return StartTime{Hour: nums[0], Minute: nums[1]}, nil
}

// ValidateName checks that the task_name field carries something visible.
// The accepted name is returned exactly as posted, surrounding whitespace
// included; only all-whitespace values are rejected.
func ValidateName(f Fields) (string, error) {
	raw, ok := f[FieldName]
	if !ok {
		return "", newFieldError(ErrMissingTaskName, FieldName, "", ReasonMissing, "was not submitted")
	}
	if strings.TrimSpace(raw) == "" {
		return "", newFieldError(ErrMissingTaskName, FieldName, raw, ReasonEmpty, "is empty")
	}
	return raw, nil
}

// presenceReason distinguishes a field posted empty from one posted with a
// value that failed to parse.
func presenceReason(raw string) Reason {
	if raw == "" {
		return ReasonEmpty
	}
	return ReasonMalformed
}

// atoiParts converts every split component to an integer, reporting the
// first offender by value. Surrounding whitespace inside a component is
// tolerated, signs are allowed.
func atoiParts(parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("has non-numeric part %q", p)
		}
		nums[i] = n
	}
	return nums, nil
}
