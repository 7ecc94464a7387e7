package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository/memory"
)

type captureExporter struct {
	reports []models.DailyHerdReport
}

func (c *captureExporter) AppendDailyReport(_ context.Context, report models.DailyHerdReport) error {
	c.reports = append(c.reports, report)
	return nil
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := models.ParseDate(value)
	require.NoError(t, err)
	return parsed
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.ReplaceAnimals(ctx, []models.Animal{
		{ID: "a1", Sex: models.SexFemale, Status: models.StatusAlive},
		{ID: "a2", Sex: models.SexMale, Status: models.StatusAlive},
		{ID: "a3", Sex: models.SexFemale, Status: models.StatusSold},
	}))
	require.NoError(t, store.ReplaceTasks(ctx, []models.CattleTask{
		{ID: "t1", Title: "Open", Category: models.CategoryFeeding},
		{ID: "t2", Title: "Done", Category: models.CategoryHealth, Completed: true},
	}))
	require.NoError(t, store.ReplaceSchedules(ctx, []models.TreatmentSchedule{
		{ID: "s1", Frequency: models.FrequencyWeekly, NextDueDate: "2024-03-01"},
		{ID: "s2", Frequency: models.FrequencyDaily, NextDueDate: "2024-03-10"},
		{ID: "s3", Frequency: models.FrequencyMonthly, NextDueDate: "2024-04-01"},
	}))
	return store
}

func TestBuildDailyReport(t *testing.T) {
	store := seededStore(t)
	svc := NewService(store, store, store, nil, nil)

	report, err := svc.BuildDailyReport(context.Background(), day(t, "2024-03-10"))
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalAnimals)
	assert.Equal(t, 2, report.ActiveAnimals)
	assert.Equal(t, 2, report.Cows)
	assert.Equal(t, 1, report.Bulls)
	assert.Equal(t, 1, report.PendingTasks)
	assert.Equal(t, 1, report.OverdueTreatments)
	assert.Equal(t, 1, report.DueTodayTreatments)
}

func TestExportDailyReport(t *testing.T) {
	store := seededStore(t)
	exporter := &captureExporter{}
	svc := NewService(store, store, store, exporter, nil)

	require.NoError(t, svc.ExportDailyReport(context.Background(), day(t, "2024-03-10")))
	require.Len(t, exporter.reports, 1)
	assert.Equal(t, 3, exporter.reports[0].TotalAnimals)
}

func TestExportDailyReportWithoutExporter(t *testing.T) {
	store := seededStore(t)
	svc := NewService(store, store, store, nil, nil)

	assert.NoError(t, svc.ExportDailyReport(context.Background(), day(t, "2024-03-10")))
}

func TestReminderMessage(t *testing.T) {
	store := seededStore(t)
	svc := NewService(store, store, store, nil, nil)

	msg, due, err := svc.ReminderMessage(context.Background(), day(t, "2024-03-10"))
	require.NoError(t, err)
	assert.True(t, due)
	assert.Equal(t, "Treatment reminder (2024-03-10): 1 overdue, 1 due today. Pending tasks: 1.", msg)
}

func TestReminderMessageNothingDue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.ReplaceSchedules(ctx, []models.TreatmentSchedule{
		{ID: "s1", Frequency: models.FrequencyWeekly, NextDueDate: "2024-04-01"},
	}))
	svc := NewService(store, store, store, nil, nil)

	msg, due, err := svc.ReminderMessage(ctx, day(t, "2024-03-10"))
	require.NoError(t, err)
	assert.False(t, due)
	assert.Empty(t, msg)
}
