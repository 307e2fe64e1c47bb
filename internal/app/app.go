package app

import (
	"context"
	"fmt"
	"time"

	"crm-reporting/internal/crm"
	"crm-reporting/internal/models"
	"crm-reporting/internal/probes"
	"crm-reporting/internal/processors"
	"crm-reporting/internal/reports"
	"crm-reporting/internal/shared/configs"
	"crm-reporting/internal/shared/filestorages"
	"crm-reporting/internal/shared/loggers"
	"crm-reporting/internal/shared/ulid"
	"crm-reporting/internal/sheets"
	"crm-reporting/internal/stores"
	"crm-reporting/internal/tokens"
)

const defaultTokenDir = ".crm_tokens"

// App holds all application dependencies. Both binaries build one App and
// invoke a single run method; scheduling lives outside the process.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	crmClient     crm.Client
	processor     processors.EventsProcessor
	latencyStore  stores.LatencyStore
	prober        probes.LatencyProber
	reportBuilder reports.ReportBuilder
	sheetsWriter  sheets.Writer

	location *time.Location
	now      func() time.Time
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "crm-reporting").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	location, err := time.LoadLocation(config.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", config.Report.Timezone, err)
	}

	bearer, err := newBearerSource(config.CRM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token source: %w", err)
	}
	crmClient := crm.NewClient(config.CRM.BaseURL, bearer)

	latencyStore, err := stores.NewLatencyStore(config.Store.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize latency store: %w", err)
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		crmClient:     crmClient,
		processor:     processors.NewEventsProcessor(config.Report.TopEventsLimit),
		latencyStore:  latencyStore,
		prober:        probes.NewLatencyProber(crmClient, latencyStore),
		reportBuilder: reports.NewReportBuilder(),
		sheetsWriter:  sheets.NewWriter(config.Sheets.SpreadsheetID, config.Sheets.ServiceAccountPath),
		location:      location,
		now:           time.Now,
	}, nil
}

// newBearerSource picks static bearer auth when a long-lived token is
// configured, falling back to the OAuth2 refresh flow.
func newBearerSource(cfg configs.CRMConfig) (tokens.BearerSource, error) {
	if cfg.LongLiveToken != "" {
		return tokens.NewStaticBearer(cfg.LongLiveToken), nil
	}

	tokenDir := cfg.TokenDir
	if tokenDir == "" {
		tokenDir = defaultTokenDir
	}
	storage, err := filestorages.NewFileStorage(tokenDir)
	if err != nil {
		return nil, err
	}

	return tokens.NewOAuthBearer(tokens.OAuthConfig{
		BaseURL:      cfg.BaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		AuthCode:     cfg.AuthCode,
	}, storage), nil
}

// RunDailyReport builds yesterday's report and appends it to the spreadsheet.
//
// The reported date's latency samples are deleted only after a successful
// append, so a failed run leaves the store intact for the next attempt.
func (a *App) RunDailyReport(ctx context.Context) error {
	logger := a.appLogger.With().Str(loggers.FieldComponent, "daily_report").Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	reportDay := a.reportDay()
	dateKey := reportDay.Format(models.DateLayout)

	logger.Info().Str(loggers.FieldReportDate, dateKey).Msg("daily report run started")

	userIDs, err := a.crmClient.GetUserIDs(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch account users")
		return err
	}

	windowFrom := reportDay
	windowTo := reportDay.AddDate(0, 0, 1).Add(-time.Second)
	events, err := a.crmClient.GetEvents(ctx, windowFrom, windowTo)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch events")
		return err
	}

	topEvents := a.processor.Process(ctx, events, userIDs)

	peak, err := a.latencyStore.MaxForDate(ctx, dateKey)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read peak latency")
		return err
	}

	rows := a.reportBuilder.BuildRows(ctx, reportDay, topEvents, peak)

	if err := a.sheetsWriter.EnsureHeaders(ctx, reports.Headers); err != nil {
		logger.Error().Err(err).Msg("failed to ensure spreadsheet headers")
		return err
	}
	if err := a.sheetsWriter.AppendRows(ctx, rows); err != nil {
		logger.Error().Err(err).Msg("failed to append report rows")
		return err
	}

	deleted, err := a.latencyStore.DeleteForDate(ctx, dateKey)
	if err != nil {
		logger.Error().Err(err).Msg("failed to delete reported latency samples")
		return err
	}

	logger.Info().
		Str(loggers.FieldReportDate, dateKey).
		Int("events", len(events)).
		Int("top_events", len(topEvents)).
		Int64("latency_samples_deleted", deleted).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("daily report run completed")
	return nil
}

// RunPingProbe measures one latency sample and persists it.
func (a *App) RunPingProbe(ctx context.Context) error {
	logger := a.appLogger.With().Str(loggers.FieldComponent, "ping_probe").Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	logger.Info().Msg("ping probe run started")

	latencyMS, err := a.prober.MeasureAndSave(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("ping probe run failed")
		return err
	}

	logger.Info().
		Int64("latency_ms", latencyMS).
		Dur(loggers.FieldDuration, time.Since(start)).
		Msg("ping probe run completed")
	return nil
}

// reportDay returns the previous calendar day's midnight in the configured
// timezone.
func (a *App) reportDay() time.Time {
	yesterday := a.now().In(a.location).AddDate(0, 0, -1)
	return time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, a.location)
}
