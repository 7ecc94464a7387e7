package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
	"github.com/mamadbah2/herdbook/internal/repository/sheets"
	"github.com/mamadbah2/herdbook/internal/service/herd"
	"github.com/mamadbah2/herdbook/internal/service/treatment"
)

// Service aggregates herd, task and treatment state into daily summaries for
// the reminder job and the optional spreadsheet export.
type Service struct {
	animals    repository.AnimalStore
	tasks      repository.TaskStore
	treatments repository.TreatmentStore
	exporter   sheets.Exporter
	logger     *zap.Logger
}

// NewService wires a new reporting service instance. exporter may be nil when
// the spreadsheet export is not configured.
func NewService(animals repository.AnimalStore, tasks repository.TaskStore, treatments repository.TreatmentStore, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		animals:    animals,
		tasks:      tasks,
		treatments: treatments,
		exporter:   exporter,
		logger:     logger,
	}
}

// BuildDailyReport snapshots the herd for the given day.
func (s *Service) BuildDailyReport(ctx context.Context, now time.Time) (models.DailyHerdReport, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return models.DailyHerdReport{}, fmt.Errorf("load herd: %w", err)
	}
	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return models.DailyHerdReport{}, fmt.Errorf("load tasks: %w", err)
	}
	schedules, err := s.treatments.ListSchedules(ctx)
	if err != nil {
		return models.DailyHerdReport{}, fmt.Errorf("load schedules: %w", err)
	}

	report := models.DailyHerdReport{
		Date:         now,
		TotalAnimals: len(animals),
		CreatedAt:    time.Now(),
	}
	for _, a := range animals {
		if herd.IsActive(a) {
			report.ActiveAnimals++
		}
		switch a.Sex {
		case models.SexFemale:
			report.Cows++
		case models.SexMale:
			report.Bulls++
		}
	}
	for _, t := range tasks {
		if !t.Completed {
			report.PendingTasks++
		}
	}
	for _, sched := range schedules {
		switch treatment.Classify(sched, now) {
		case treatment.StatusOverdue:
			report.OverdueTreatments++
		case treatment.StatusDueToday:
			report.DueTodayTreatments++
		}
	}

	return report, nil
}

// ExportDailyReport builds today's report and appends it to the configured
// spreadsheet. It is a no-op when no exporter is wired.
func (s *Service) ExportDailyReport(ctx context.Context, now time.Time) error {
	if s.exporter == nil {
		return nil
	}

	report, err := s.BuildDailyReport(ctx, now)
	if err != nil {
		return err
	}
	if err := s.exporter.AppendDailyReport(ctx, report); err != nil {
		return fmt.Errorf("export daily report: %w", err)
	}

	s.logger.Info("daily report exported", zap.Time("date", now))
	return nil
}

// ReminderMessage formats the treatment reminder for the given day. The bool
// reports whether anything needs attention; callers skip the push when false.
func (s *Service) ReminderMessage(ctx context.Context, now time.Time) (string, bool, error) {
	report, err := s.BuildDailyReport(ctx, now)
	if err != nil {
		return "", false, err
	}

	if report.OverdueTreatments == 0 && report.DueTodayTreatments == 0 {
		return "", false, nil
	}

	msg := fmt.Sprintf("Treatment reminder (%s): %d overdue, %d due today. Pending tasks: %d.",
		now.Format(models.DateLayout),
		report.OverdueTreatments,
		report.DueTodayTreatments,
		report.PendingTasks)
	return msg, true, nil
}
