package treatment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := models.ParseDate(value)
	require.NoError(t, err)
	return parsed
}

func TestNextDue(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		frequency models.TreatmentFrequency
		want      string
	}{
		{"daily", "2024-03-01", models.FrequencyDaily, "2024-03-02"},
		{"weekly", "2024-03-01", models.FrequencyWeekly, "2024-03-08"},
		{"monthly", "2024-03-15", models.FrequencyMonthly, "2024-04-15"},
		{"monthly clamps to leap february", "2024-01-31", models.FrequencyMonthly, "2024-02-29"},
		{"monthly clamps to short month", "2024-03-31", models.FrequencyMonthly, "2024-04-30"},
		{"monthly across year end", "2024-12-31", models.FrequencyMonthly, "2025-01-31"},
		{"yearly", "2024-03-01", models.FrequencyYearly, "2025-03-01"},
		{"yearly clamps leap day", "2024-02-29", models.FrequencyYearly, "2025-02-28"},
		{"once unchanged", "2024-03-01", models.FrequencyOnce, "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDue(date(t, tt.from), tt.frequency)
			assert.Equal(t, tt.want, models.FormatDate(got))
		})
	}
}

func TestClassify(t *testing.T) {
	today := date(t, "2024-03-10")

	schedule := func(due string, freq models.TreatmentFrequency) models.TreatmentSchedule {
		return models.TreatmentSchedule{NextDueDate: due, Frequency: freq}
	}

	tests := []struct {
		name     string
		schedule models.TreatmentSchedule
		want     Status
	}{
		{"past recurring is overdue", schedule("2024-03-09", models.FrequencyWeekly), StatusOverdue},
		{"long past recurring is overdue", schedule("2023-01-01", models.FrequencyMonthly), StatusOverdue},
		{"due today", schedule("2024-03-10", models.FrequencyDaily), StatusDueToday},
		{"once due today", schedule("2024-03-10", models.FrequencyOnce), StatusDueToday},
		{"within seven days is upcoming", schedule("2024-03-17", models.FrequencyWeekly), StatusUpcoming},
		{"eighth day is scheduled", schedule("2024-03-18", models.FrequencyWeekly), StatusScheduled},
		{"past once is never overdue", schedule("2020-01-01", models.FrequencyOnce), StatusScheduled},
		{"unparseable due date is scheduled", schedule("", models.FrequencyWeekly), StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.schedule, today))
		})
	}
}
