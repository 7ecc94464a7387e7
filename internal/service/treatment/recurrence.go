package treatment

import (
	"time"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

// Status classifies a schedule relative to a reference day.
type Status string

const (
	StatusOverdue   Status = "overdue"
	StatusDueToday  Status = "due_today"
	StatusUpcoming  Status = "upcoming"
	StatusScheduled Status = "scheduled"
)

// upcomingWindowDays is how far ahead a due date still counts as upcoming.
const upcomingWindowDays = 7

// NextDue computes the next due date after one occurrence anchored at from.
// Month and year steps preserve the day-of-month and clamp to the last day of
// the target month on overflow (2024-01-31 +1mo = 2024-02-29). A once
// frequency returns from unchanged.
func NextDue(from time.Time, frequency models.TreatmentFrequency) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return addMonthsClamped(from, 1)
	case models.FrequencyYearly:
		return addMonthsClamped(from, 12)
	default:
		return from
	}
}

// Classify buckets a schedule against the given day. A once schedule whose
// date has passed is never overdue: it was recorded once and is not
// re-surfaced.
func Classify(schedule models.TreatmentSchedule, today time.Time) Status {
	due, err := models.ParseDate(schedule.NextDueDate)
	if err != nil {
		return StatusScheduled
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case schedule.Frequency != models.FrequencyOnce && due.Before(day):
		return StatusOverdue
	case due.Equal(day):
		return StatusDueToday
	case due.After(day) && !due.After(day.AddDate(0, 0, upcomingWindowDays)):
		return StatusUpcoming
	default:
		return StatusScheduled
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
