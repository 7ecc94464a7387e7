package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/config"
	"github.com/mamadbah2/herdbook/internal/service/reporting"
	"github.com/mamadbah2/herdbook/pkg/clients/notify"
)

// exportCron runs the daily report export after evening chores are logged.
const exportCron = "0 20 * * *"

// Scheduler manages the recurring background jobs: the treatment reminder and
// the daily report export.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	notifyClient notify.Client
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. notifyClient may be nil when
// no reminder webhook is configured.
func NewScheduler(cfg config.Config, reportingSvc *reporting.Service, notifyClient notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow). Jobs run in the configured timezone when it resolves.
	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Reminder.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Reminder.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:         cron.New(opts...),
		reportingSvc: reportingSvc,
		notifyClient: notifyClient,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Reminder.CronSchedule, s.sendTreatmentReminder); err != nil {
		s.logger.Error("failed to schedule treatment reminder", zap.Error(err))
	}

	if _, err := s.cron.AddFunc(exportCron, s.exportDailyReport); err != nil {
		s.logger.Error("failed to schedule report export", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendTreatmentReminder() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	msg, due, err := s.reportingSvc.ReminderMessage(ctx, time.Now())
	if err != nil {
		s.logger.Error("failed to build treatment reminder", zap.Error(err))
		return
	}
	if !due {
		s.logger.Debug("no treatments due, reminder skipped")
		return
	}

	s.logger.Info("treatments due", zap.String("summary", msg))
	if s.notifyClient == nil {
		return
	}

	req := notify.SendReminderRequest{
		Title:   "Treatment Reminder",
		Message: msg,
	}
	if _, err := s.notifyClient.SendReminder(ctx, req); err != nil {
		s.logger.Error("failed to send treatment reminder", zap.Error(err))
	} else {
		s.logger.Info("treatment reminder sent")
	}
}

func (s *Scheduler) exportDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.ExportDailyReport(ctx, time.Now()); err != nil {
		s.logger.Error("failed to export daily report", zap.Error(err))
	}
}
