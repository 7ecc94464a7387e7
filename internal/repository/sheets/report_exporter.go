package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/herdbook/internal/config"
	"github.com/mamadbah2/herdbook/internal/domain/models"
)

const reportRange = "HerdReports!A:H"

// Exporter defines the spreadsheet export operations supported by the Google
// Sheets adapter.
type Exporter interface {
	AppendDailyReport(ctx context.Context, report models.DailyHerdReport) error
}

// GoogleSheetExporter implements the Exporter interface using the official
// Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendDailyReport appends the report as one row to the herd reports sheet.
func (e *GoogleSheetExporter) AppendDailyReport(ctx context.Context, report models.DailyHerdReport) error {
	row := []interface{}{
		report.Date.Format(models.DateLayout),
		report.TotalAnimals,
		report.ActiveAnimals,
		report.Cows,
		report.Bulls,
		report.PendingTasks,
		report.OverdueTreatments,
		report.DueTodayTreatments,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report row into range %s: %w", reportRange, err)
	}

	e.logger.Debug("daily report appended to sheet", zap.String("range", reportRange))
	return nil
}
