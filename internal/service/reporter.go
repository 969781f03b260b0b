// Package service wires chart loading, pace figures, guides and storage into
// reporter runs.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/result-reporter/internal/chart"
	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/guide"
	"github.com/yourusername/result-reporter/internal/logger"
	"github.com/yourusername/result-reporter/internal/metrics"
	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/pace"
	"github.com/yourusername/result-reporter/internal/repository"
)

// ErrPersistenceDisabled is returned by Persist when no repository is configured.
var ErrPersistenceDisabled = errors.New("persistence is not configured")

// ReportService runs the reporter workflows
type ReportService struct {
	loader    *chart.Loader
	validator *ChartValidator
	guides    *guide.Writer
	store     repository.Store
	tables    map[models.Model]string
	chartLog  *logger.ChartLogger
	audit     *logger.AuditLogger
	summary   *RunSummary
}

// NewReportService creates a new report service. store may be nil when
// persistence is disabled.
func NewReportService(
	log *logrus.Logger,
	guides *guide.Writer,
	store repository.Store,
	tables map[models.Model]string,
) *ReportService {
	chartLog := logger.NewChartLogger(log)
	return &ReportService{
		loader:    chart.NewLoader(chartLog),
		validator: NewChartValidator(log),
		guides:    guides,
		store:     store,
		tables:    tables,
		chartLog:  chartLog,
		audit:     logger.NewAuditLogger(log),
		summary:   NewRunSummary(),
	}
}

// Summary returns the statistics gathered so far
func (s *ReportService) Summary() *RunSummary {
	return s.summary
}

// LoadCharts loads and validates every chart of the track under root.
func (s *ReportService) LoadCharts(root, trackCode string) ([]*chart.Chart, error) {
	charts, err := s.loader.Load(root, trackCode)
	if err != nil {
		return nil, err
	}

	issues := 0
	for _, c := range charts {
		issues += len(s.validator.ValidateChart(c))
	}
	s.summary.RecordCharts(len(charts), issues)
	return charts, nil
}

// BuildDays reduces each chart to daily records over the surfaces of all charts.
func (s *ReportService) BuildDays(charts []*chart.Chart, model models.Model) ([]*daily.Day, error) {
	surfaces := daily.Surfaces(charts)
	days := make([]*daily.Day, 0, len(charts))
	for _, c := range charts {
		day, err := daily.Build(c, model, surfaces)
		if err != nil {
			return nil, err
		}

		metrics.RecordReportsBuilt(string(model), day.Reports, day.UndefinedFigures)
		s.chartLog.LogReportsBuilt(string(model), c.TrackCode, c.RaceDate, day.Reports, day.UndefinedFigures)
		s.summary.RecordReports(day.Reports, day.UndefinedFigures)
		days = append(days, day)
	}
	return days, nil
}

// WriteGuide builds the model's days and renders them to path.
func (s *ReportService) WriteGuide(ctx context.Context, charts []*chart.Chart, model models.Model, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	days, err := s.BuildDays(charts, model)
	if err != nil {
		return err
	}

	surfaces := daily.Surfaces(charts)
	if err := s.guides.Write(path, model, surfaces, days); err != nil {
		return err
	}

	elapsed := time.Since(start)
	metrics.RecordGuideWrite(elapsed.Seconds())
	s.audit.LogGuideWritten(string(model), path, len(charts), len(surfaces), float64(elapsed.Milliseconds()))
	return nil
}

// Persist stores every record of the days under one run ID. Each day is
// written in its own transaction. Records already stored are skipped.
func (s *ReportService) Persist(ctx context.Context, days []*daily.Day) (uuid.UUID, error) {
	if s.store == nil {
		return uuid.Nil, ErrPersistenceDisabled
	}

	runID := uuid.New()
	ready := make(map[string]bool)
	for _, day := range days {
		table, ok := s.tables[day.Model]
		if !ok {
			return runID, fmt.Errorf("no table for %w: %q", models.ErrUnknownModel, day.Model)
		}

		var inserted []bool
		err := s.store.WithTransaction(ctx, func(repo repository.DailyFigureRepository) error {
			inserted = inserted[:0]
			if !ready[table] {
				if err := repo.EnsureSchema(ctx, table); err != nil {
					return err
				}
			}
			for _, record := range day.Records {
				if err := ctx.Err(); err != nil {
					return err
				}
				ok, err := repo.Insert(ctx, table, record, runID)
				if err != nil {
					return fmt.Errorf("%s %s %s %s: %w",
						record.TrackCode, record.RaceDate.Format(daily.RaceDateLayout), record.Surface, record.Key, err)
				}
				inserted = append(inserted, ok)
			}
			return nil
		})
		if err != nil {
			return runID, err
		}
		ready[table] = true

		for i, record := range day.Records {
			metrics.RecordDailyRecordStored(string(day.Model), inserted[i])
			s.audit.LogDailyRecordStored(runID.String(), table, record.RaceDate.Format(daily.RaceDateLayout),
				record.Surface, record.Key.String(), inserted[i])
			s.summary.RecordStored(inserted[i])
		}
	}
	return runID, nil
}

// Lookup reads back one stored daily record of a model.
func (s *ReportService) Lookup(ctx context.Context, model models.Model, trackCode string, raceDate time.Time,
	surface string, key models.DistanceKey) (*repository.StoredRecord, error) {
	if s.store == nil {
		return nil, ErrPersistenceDisabled
	}
	table, ok := s.tables[model]
	if !ok {
		return nil, fmt.Errorf("no table for %w: %q", models.ErrUnknownModel, model)
	}

	var stored *repository.StoredRecord
	err := s.store.WithTransaction(ctx, func(repo repository.DailyFigureRepository) error {
		var err error
		stored, err = repo.Get(ctx, table, trackCode, raceDate, surface, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// DayReport prints the chart's Brohamer reports.
func (s *ReportService) DayReport(w io.Writer, c *chart.Chart) error {
	reports, err := pace.BrohamerReports(c)
	if err != nil {
		return err
	}
	return guide.DayReport(w, reports)
}
