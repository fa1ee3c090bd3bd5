package task_test

import (
	"errors"
	"testing"
	"time"

	"tasktracker-webui/internal/model"
	"tasktracker-webui/internal/task"
	"tasktracker-webui/pkg/datetime"
)

func TestTranslate(t *testing.T) {
	composer, _ := datetime.NewComposer("UTC")
	weekly := model.RecurrenceRule{Type: model.RepeatWithInterval, Parameter: 7}

	t.Run("Builds the outbound payload", func(t *testing.T) {
		got, err := task.Translate(composer,
			task.StartDate{Year: 2024, Month: 3, Day: 15},
			task.StartTime{Hour: 9, Minute: 30},
			"Water plants", weekly)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		want := model.TaskCreation{
			Name:    "Water plants",
			StartAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			Rule:    weekly,
		}
		if got.Name != want.Name || !got.StartAt.Equal(want.StartAt) || got.Rule != want.Rule {
			t.Errorf("Translate() got = %+v, want %+v", got, want)
		}
	})

	t.Run("Impossible date fails as a start date error", func(t *testing.T) {
		_, err := task.Translate(composer,
			task.StartDate{Year: 2024, Month: 2, Day: 30},
			task.StartTime{Hour: 4, Minute: 30},
			"Water plants", weekly)
		if !errors.Is(err, task.ErrInvalidStartDate) {
			t.Fatalf("got %v, want ErrInvalidStartDate", err)
		}

		var fieldErr *task.FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("expected *task.FieldError, got %T", err)
		}
		if fieldErr.Field != "task_start" {
			t.Errorf("unexpected field: %q", fieldErr.Field)
		}
	})

	t.Run("Out-of-range time fails as a start date error", func(t *testing.T) {
		_, err := task.Translate(composer,
			task.StartDate{Year: 2024, Month: 3, Day: 15},
			task.StartTime{Hour: 25, Minute: 0},
			"Water plants", weekly)
		if !errors.Is(err, task.ErrInvalidStartDate) {
			t.Errorf("got %v, want ErrInvalidStartDate", err)
		}
	})

	t.Run("Name is forwarded untouched", func(t *testing.T) {
		got, err := task.Translate(composer,
			task.StartDate{Year: 2024, Month: 3, Day: 15},
			task.StartTime{Hour: 9, Minute: 30},
			"  spaced  name  ", weekly)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Name != "  spaced  name  " {
			t.Errorf("Translate() got name %q, want it untouched", got.Name)
		}
	})
}
