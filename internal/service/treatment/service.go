package treatment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
)

// ErrScheduleNotFound is returned when an operation targets an unknown
// schedule id.
var ErrScheduleNotFound = errors.New("treatment schedule not found")

// ErrCustomNameRequired is returned when a custom schedule is created without
// a name.
var ErrCustomNameRequired = errors.New("custom treatments require a name")

// Service owns treatment schedules and records: creating schedules, recording
// administered treatments with same-day deduplication, and advancing due
// dates.
type Service struct {
	store  repository.TreatmentStore
	logger *zap.Logger
}

// NewService wires a new treatment service instance.
func NewService(store repository.TreatmentStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// ScheduleInput carries the fields for planning a treatment.
type ScheduleInput struct {
	Type       models.TreatmentType      `json:"type" binding:"required"`
	CustomName string                    `json:"customName"`
	AnimalIDs  []string                  `json:"animalIds" binding:"required"`
	StartDate  string                    `json:"startDate" binding:"required"`
	EndDate    string                    `json:"endDate"`
	Frequency  models.TreatmentFrequency `json:"frequency" binding:"required"`
	Notes      string                    `json:"notes"`
}

// ListSchedules returns every schedule, newest first.
func (s *Service) ListSchedules(ctx context.Context) ([]models.TreatmentSchedule, error) {
	return s.store.ListSchedules(ctx)
}

// CreateSchedule plans a new treatment. The first due date is the start date.
func (s *Service) CreateSchedule(ctx context.Context, input ScheduleInput) (models.TreatmentSchedule, error) {
	if input.Type == models.TypeCustom && input.CustomName == "" {
		return models.TreatmentSchedule{}, ErrCustomNameRequired
	}

	schedules, err := s.store.ListSchedules(ctx)
	if err != nil {
		return models.TreatmentSchedule{}, err
	}

	schedule := models.TreatmentSchedule{
		ID:          uuid.NewString(),
		Type:        input.Type,
		CustomName:  input.CustomName,
		AnimalIDs:   input.AnimalIDs,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Frequency:   input.Frequency,
		NextDueDate: input.StartDate,
		Notes:       input.Notes,
		CreatedAt:   models.Timestamp(time.Now()),
	}

	if err := s.store.ReplaceSchedules(ctx, append([]models.TreatmentSchedule{schedule}, schedules...)); err != nil {
		return models.TreatmentSchedule{}, err
	}

	s.logger.Info("treatment schedule created",
		zap.String("id", schedule.ID),
		zap.String("type", string(schedule.Type)),
		zap.Int("animals", len(schedule.AnimalIDs)))
	return schedule, nil
}

// DeleteSchedule removes a schedule. Records stay: they carry their own copy
// of the treatment type.
func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	schedules, err := s.store.ListSchedules(ctx)
	if err != nil {
		return err
	}

	kept := schedules[:0]
	found := false
	for _, sched := range schedules {
		if sched.ID == id {
			found = true
			continue
		}
		kept = append(kept, sched)
	}
	if !found {
		return ErrScheduleNotFound
	}
	return s.store.ReplaceSchedules(ctx, kept)
}

// RecordInput carries the fields for recording an administered treatment.
type RecordInput struct {
	AnimalIDs      []string `json:"animalIds" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	Notes          string   `json:"notes"`
	AdministeredBy string   `json:"administeredBy"`
}

// Record logs the treatment for each animal, skipping animals that already
// have a record for the same schedule and date. For recurring schedules the
// next due date is recomputed from the administered date, not the prior due
// date, so recording late does not compound drift. Returns the newly created
// records (possibly none when all were duplicates) and the updated schedule.
func (s *Service) Record(ctx context.Context, scheduleID string, input RecordInput) ([]models.TreatmentRecord, models.TreatmentSchedule, error) {
	schedules, err := s.store.ListSchedules(ctx)
	if err != nil {
		return nil, models.TreatmentSchedule{}, err
	}

	schedIdx := -1
	for i := range schedules {
		if schedules[i].ID == scheduleID {
			schedIdx = i
			break
		}
	}
	if schedIdx < 0 {
		return nil, models.TreatmentSchedule{}, ErrScheduleNotFound
	}
	schedule := schedules[schedIdx]

	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, models.TreatmentSchedule{}, err
	}

	var created []models.TreatmentRecord
	for _, animalID := range input.AnimalIDs {
		if hasRecord(records, scheduleID, animalID, input.Date) {
			s.logger.Debug("duplicate treatment record skipped",
				zap.String("schedule_id", scheduleID),
				zap.String("animal_id", animalID),
				zap.String("date", input.Date))
			continue
		}
		created = append(created, models.TreatmentRecord{
			ID:             uuid.NewString(),
			ScheduleID:     scheduleID,
			AnimalID:       animalID,
			Type:           schedule.Type,
			CustomName:     schedule.CustomName,
			Date:           input.Date,
			Notes:          input.Notes,
			AdministeredBy: input.AdministeredBy,
			CreatedAt:      models.Timestamp(time.Now()),
		})
	}

	if len(created) > 0 {
		if err := s.store.ReplaceRecords(ctx, append(created, records...)); err != nil {
			return nil, models.TreatmentSchedule{}, err
		}
	}

	if schedule.Frequency != models.FrequencyOnce {
		administered, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, models.TreatmentSchedule{}, err
		}
		schedule.NextDueDate = models.FormatDate(NextDue(administered, schedule.Frequency))
		schedules[schedIdx] = schedule
		if err := s.store.ReplaceSchedules(ctx, schedules); err != nil {
			return nil, models.TreatmentSchedule{}, err
		}
	}

	s.logger.Info("treatment recorded",
		zap.String("schedule_id", scheduleID),
		zap.Int("new_records", len(created)),
		zap.String("next_due", schedule.NextDueDate))
	return created, schedule, nil
}

// History returns the records of one schedule, newest first.
func (s *Service) History(ctx context.Context, scheduleID string) ([]models.TreatmentRecord, error) {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	var history []models.TreatmentRecord
	for _, r := range records {
		if r.ScheduleID == scheduleID {
			history = append(history, r)
		}
	}
	return history, nil
}

// CountByStatus classifies every schedule against today and tallies the
// buckets. Used by the reminder job and the overview screen.
func (s *Service) CountByStatus(ctx context.Context, today time.Time) (map[Status]int, error) {
	schedules, err := s.store.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[Status]int)
	for _, sched := range schedules {
		counts[Classify(sched, today)]++
	}
	return counts, nil
}

func hasRecord(records []models.TreatmentRecord, scheduleID, animalID, date string) bool {
	for _, r := range records {
		if r.ScheduleID == scheduleID && r.AnimalID == animalID && r.Date == date {
			return true
		}
	}
	return false
}
