package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/config"
	"github.com/mamadbah2/herdbook/internal/repository/mongodb"
	"github.com/mamadbah2/herdbook/internal/repository/sheets"
	"github.com/mamadbah2/herdbook/internal/scheduler"
	"github.com/mamadbah2/herdbook/internal/server/handlers"
	"github.com/mamadbah2/herdbook/internal/server/router"
	chatsvc "github.com/mamadbah2/herdbook/internal/service/chat"
	herdsvc "github.com/mamadbah2/herdbook/internal/service/herd"
	notesvc "github.com/mamadbah2/herdbook/internal/service/notes"
	reportingsvc "github.com/mamadbah2/herdbook/internal/service/reporting"
	tasksvc "github.com/mamadbah2/herdbook/internal/service/tasks"
	treatmentsvc "github.com/mamadbah2/herdbook/internal/service/treatment"
	"github.com/mamadbah2/herdbook/pkg/clients/notify"
	"github.com/mamadbah2/herdbook/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Optional spreadsheet export of daily herd reports.
	var exporter sheets.Exporter
	if cfg.SheetsEnabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets report export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, report export disabled")
	}

	herdSvc := herdsvc.NewService(repo, baseLogger.Named("svc.herd"))
	taskSvc := tasksvc.NewService(repo, baseLogger.Named("svc.tasks"))
	noteSvc := notesvc.NewService(repo, baseLogger.Named("svc.notes"))
	treatmentSvc := treatmentsvc.NewService(repo, baseLogger.Named("svc.treatment"))
	chatSvc := chatsvc.NewService(repo, baseLogger.Named("svc.chat"))
	reportingSvc := reportingsvc.NewService(repo, repo, repo, exporter, baseLogger.Named("svc.reporting"))

	var notifyClient notify.Client
	if cfg.NotifyEnabled() {
		notifyClient = notify.NewClient(cfg.Notify)
		baseLogger.Info("reminder webhook enabled")
	} else {
		baseLogger.Warn("notify webhook missing, treatment reminders will only be logged")
	}

	engine := router.New(router.Handlers{
		Animals:    handlers.NewAnimalsHandler(herdSvc, baseLogger.Named("handlers.animals")),
		Tasks:      handlers.NewTasksHandler(taskSvc, baseLogger.Named("handlers.tasks")),
		Notes:      handlers.NewNotesHandler(noteSvc, baseLogger.Named("handlers.notes")),
		Treatments: handlers.NewTreatmentsHandler(treatmentSvc, baseLogger.Named("handlers.treatments")),
		Chat:       handlers.NewChatHandler(chatSvc, baseLogger.Named("handlers.chat")),
	}, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(*cfg, reportingSvc, notifyClient, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     engine,
		ReadTimeout: 15 * time.Second,
		// No write timeout: the chat stream endpoint holds its response open.
		IdleTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
