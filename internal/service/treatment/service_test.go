package treatment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository/memory"
)

func newTestService() *Service {
	return NewService(memory.NewStore(), nil)
}

func TestCreateScheduleFirstDueIsStartDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, ScheduleInput{
		Type:      models.TypeVaccination,
		AnimalIDs: []string{"a1", "a2"},
		StartDate: "2024-03-01",
		Frequency: models.FrequencyWeekly,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", schedule.NextDueDate)
	assert.NotEmpty(t, schedule.ID)
}

func TestCreateScheduleCustomRequiresName(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateSchedule(context.Background(), ScheduleInput{
		Type:      models.TypeCustom,
		AnimalIDs: []string{"a1"},
		StartDate: "2024-03-01",
		Frequency: models.FrequencyOnce,
	})
	assert.ErrorIs(t, err, ErrCustomNameRequired)

	schedule, err := svc.CreateSchedule(context.Background(), ScheduleInput{
		Type:       models.TypeCustom,
		CustomName: "Hoof trim",
		AnimalIDs:  []string{"a1"},
		StartDate:  "2024-03-01",
		Frequency:  models.FrequencyOnce,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hoof trim", schedule.DisplayName())
}

func TestRecordAnchorsNextDueAtAdministeredDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, ScheduleInput{
		Type:      models.TypeDeworming,
		AnimalIDs: []string{"a1"},
		StartDate: "2024-03-01",
		Frequency: models.FrequencyWeekly,
	})
	require.NoError(t, err)

	// Recording late re-anchors at the administered date, not the prior due
	// date, so the next occurrence does not compound the drift.
	created, updated, err := svc.Record(ctx, schedule.ID, RecordInput{
		AnimalIDs: []string{"a1"},
		Date:      "2024-03-05",
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "2024-03-12", updated.NextDueDate)
	assert.Equal(t, models.TypeDeworming, created[0].Type)
}

func TestRecordDeduplicatesSameDay(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, ScheduleInput{
		Type:      models.TypeVaccination,
		AnimalIDs: []string{"a1", "a2"},
		StartDate: "2024-03-01",
		Frequency: models.FrequencyMonthly,
	})
	require.NoError(t, err)

	first, _, err := svc.Record(ctx, schedule.ID, RecordInput{AnimalIDs: []string{"a1", "a2"}, Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// Same schedule, same animals, same date: silently dropped.
	second, _, err := svc.Record(ctx, schedule.ID, RecordInput{AnimalIDs: []string{"a1", "a2"}, Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Empty(t, second)

	history, err := svc.History(ctx, schedule.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	// A different date records again.
	third, _, err := svc.Record(ctx, schedule.ID, RecordInput{AnimalIDs: []string{"a1"}, Date: "2024-03-02"})
	require.NoError(t, err)
	assert.Len(t, third, 1)
}

func TestRecordOnceKeepsDueDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, ScheduleInput{
		Type:      models.TypeVitamins,
		AnimalIDs: []string{"a1"},
		StartDate: "2024-03-01",
		Frequency: models.FrequencyOnce,
	})
	require.NoError(t, err)

	_, updated, err := svc.Record(ctx, schedule.ID, RecordInput{AnimalIDs: []string{"a1"}, Date: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", updated.NextDueDate)
}

func TestRecordUnknownSchedule(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Record(context.Background(), "missing", RecordInput{AnimalIDs: []string{"a1"}, Date: "2024-03-01"})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestDeleteScheduleKeepsRecords(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	schedule, err := svc.CreateSchedule(ctx, ScheduleInput{
		Type:       models.TypeCustom,
		CustomName: "Footbath",
		AnimalIDs:  []string{"a1"},
		StartDate:  "2024-03-01",
		Frequency:  models.FrequencyWeekly,
	})
	require.NoError(t, err)

	_, _, err = svc.Record(ctx, schedule.ID, RecordInput{AnimalIDs: []string{"a1"}, Date: "2024-03-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSchedule(ctx, schedule.ID))

	// History survives on its own denormalized copy of the treatment type.
	history, err := svc.History(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Footbath", history[0].CustomName)

	assert.ErrorIs(t, svc.DeleteSchedule(ctx, schedule.ID), ErrScheduleNotFound)
}
