package model

import "time"

// RepeatType enumerates how a task repeats. The ordinal values are part of
// the task tracker wire contract and must not be reordered.
type RepeatType int

const (
	RepeatNone RepeatType = iota
	RepeatMonthly
	RepeatMonthlyDay // reserved: valid on the wire, never produced by the form
	RepeatSpecifiedDays
	RepeatWithInterval
)

// String returns the human-readable repeat type name for logs.
func (t RepeatType) String() string {
	switch t {
	case RepeatNone:
		return "no_repeat"
	case RepeatMonthly:
		return "monthly"
	case RepeatMonthlyDay:
		return "monthly_day"
	case RepeatSpecifiedDays:
		return "specified_days"
	case RepeatWithInterval:
		return "with_interval"
	default:
		return "unknown"
	}
}

// RecurrenceRule pairs a repeat type with its parameter. The two are only
// meaningful together: for RepeatSpecifiedDays the parameter is a
// digit-concatenated weekday set (1234567 is every day, 12345 is weekdays),
// for RepeatWithInterval it is the interval in days, otherwise it is zero.
type RecurrenceRule struct {
	Type      RepeatType
	Parameter int
}

// TaskCreation is the outbound task payload: everything the tracker needs
// to store one task. Built once per valid submission and handed to the
// tracker repository.
type TaskCreation struct {
	Name    string
	StartAt time.Time // composed in the server-local zone, second precision
	Rule    RecurrenceRule
}
