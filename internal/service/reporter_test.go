package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/result-reporter/internal/chart/charttest"
	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/guide"
	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/repository"
)

type storedKey struct {
	table   string
	track   string
	date    string
	surface string
	key     models.DistanceKey
}

// fakeRepository keeps rows in memory. WithTransaction restores the previous
// rows when fn fails.
type fakeRepository struct {
	schemas      []string
	stored       map[storedKey]uuid.UUID
	failOn       *storedKey
	transactions int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{stored: make(map[storedKey]uuid.UUID)}
}

func (f *fakeRepository) WithTransaction(ctx context.Context, fn func(repo repository.DailyFigureRepository) error) error {
	f.transactions++
	schemas := append([]string(nil), f.schemas...)
	stored := make(map[storedKey]uuid.UUID, len(f.stored))
	for k, v := range f.stored {
		stored[k] = v
	}
	if err := fn(f); err != nil {
		f.schemas, f.stored = schemas, stored
		return err
	}
	return nil
}

func (f *fakeRepository) EnsureSchema(ctx context.Context, table string) error {
	f.schemas = append(f.schemas, table)
	return nil
}

func (f *fakeRepository) Insert(ctx context.Context, table string, record daily.Record, runID uuid.UUID) (bool, error) {
	k := storedKey{table, record.TrackCode, record.RaceDate.Format(daily.RaceDateLayout), record.Surface, record.Key}
	if f.failOn != nil && *f.failOn == k {
		return false, errors.New("connection reset")
	}
	if _, ok := f.stored[k]; ok {
		return false, nil
	}
	f.stored[k] = runID
	return true, nil
}

func (f *fakeRepository) Get(ctx context.Context, table, trackCode string, raceDate time.Time, surface string, key models.DistanceKey) (*repository.StoredRecord, error) {
	runID, ok := f.stored[storedKey{table, trackCode, raceDate.Format(daily.RaceDateLayout), surface, key}]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &repository.StoredRecord{
		Record: daily.Record{RaceDate: raceDate, TrackCode: trackCode, Surface: surface, Key: key},
		RunID:  runID,
	}, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var testTables = map[models.Model]string{
	models.ShakeUpModel:  "shake_up_daily",
	models.BrohamerModel: "brohamer_daily",
}

func writeCard(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "2024")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AQU20240105.csv"), []byte(charttest.TwoRaceCardCSV), 0o644))
	return root
}

func TestReportServiceLoadCharts(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)

	charts, err := svc.LoadCharts(writeCard(t), "AQU")
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "20240105", charts[0].RaceDate)

	summary := svc.Summary()
	assert.Equal(t, 1, summary.Charts)
	assert.Equal(t, 0, summary.ValidationIssues)
}

func TestReportServiceBuildDays(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)
	card := charttest.TwoRaceCard(t)

	days, err := svc.BuildDays(charttest.Charts(card), models.BrohamerModel)
	require.NoError(t, err)
	require.Len(t, days, 1)

	day := days[0]
	assert.Equal(t, models.BrohamerModel, day.Model)
	assert.Equal(t, 2, day.Reports)
	require.Len(t, day.Records, 2)
	assert.Equal(t, models.Sprint, day.Records[0].Key)
	assert.Equal(t, models.Route, day.Records[1].Key)
	assert.Equal(t, "1r", day.Records[0].Comment)

	assert.Equal(t, 2, svc.Summary().Reports)
}

func TestReportServiceBuildDaysUnknownModel(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)

	_, err := svc.BuildDays(charttest.Charts(charttest.TwoRaceCard(t)), models.Model("sartin"))
	assert.ErrorIs(t, err, models.ErrUnknownModel)
}

func TestReportServiceWriteGuide(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)
	charts, err := svc.LoadCharts(writeCard(t), "AQU")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "AQU_shake_up_guide.xlsx")
	require.NoError(t, svc.WriteGuide(context.Background(), charts, models.ShakeUpModel, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = svc.WriteGuide(context.Background(), charts, models.ShakeUpModel, path)
	assert.ErrorIs(t, err, guide.ErrGuideExists)
}

func TestReportServiceWriteGuideCancelled(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "guide.xlsx")
	err := svc.WriteGuide(ctx, charttest.Charts(charttest.TwoRaceCard(t)), models.ShakeUpModel, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestReportServicePersist(t *testing.T) {
	repo := newFakeRepository()
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), repo, testTables)
	charts := charttest.Charts(charttest.TwoRaceCard(t))

	var days []*daily.Day
	for _, model := range []models.Model{models.ShakeUpModel, models.BrohamerModel} {
		built, err := svc.BuildDays(charts, model)
		require.NoError(t, err)
		days = append(days, built...)
	}

	runID, err := svc.Persist(context.Background(), days)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, runID)
	assert.ElementsMatch(t, []string{"shake_up_daily", "brohamer_daily"}, repo.schemas)
	assert.Len(t, repo.stored, 4)
	// one transaction per day
	assert.Equal(t, 2, repo.transactions)

	_, err = svc.Persist(context.Background(), days)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 4)

	summary := svc.Summary()
	assert.Equal(t, 4, summary.RecordsInserted)
	assert.Equal(t, 4, summary.Duplicates)
}

func TestReportServicePersistRollsBackFailedDay(t *testing.T) {
	repo := newFakeRepository()
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), repo, testTables)
	days, err := svc.BuildDays(charttest.Charts(charttest.TwoRaceCard(t)), models.ShakeUpModel)
	require.NoError(t, err)

	route := days[0].Records[1]
	repo.failOn = &storedKey{"shake_up_daily", route.TrackCode, route.RaceDate.Format(daily.RaceDateLayout), route.Surface, route.Key}

	_, err = svc.Persist(context.Background(), days)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AQU 20240105 D ROUTE")

	// the sprint row written earlier in the same day is gone
	assert.Empty(t, repo.stored)
	assert.Empty(t, repo.schemas)
	assert.Equal(t, 0, svc.Summary().RecordsInserted)

	repo.failOn = nil
	_, err = svc.Persist(context.Background(), days)
	require.NoError(t, err)
	assert.Len(t, repo.stored, 2)
	assert.Equal(t, []string{"shake_up_daily"}, repo.schemas)
}

func TestReportServicePersistDisabled(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)

	_, err := svc.Persist(context.Background(), nil)
	assert.ErrorIs(t, err, ErrPersistenceDisabled)

	_, err = svc.Lookup(context.Background(), models.ShakeUpModel, "AQU", time.Now(), "D", models.Sprint)
	assert.ErrorIs(t, err, ErrPersistenceDisabled)
}

func TestReportServiceLookup(t *testing.T) {
	repo := newFakeRepository()
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), repo, testTables)
	days, err := svc.BuildDays(charttest.Charts(charttest.TwoRaceCard(t)), models.BrohamerModel)
	require.NoError(t, err)
	runID, err := svc.Persist(context.Background(), days)
	require.NoError(t, err)

	raceDate := days[0].RaceDate
	stored, err := svc.Lookup(context.Background(), models.BrohamerModel, "AQU", raceDate, "D", models.Route)
	require.NoError(t, err)
	assert.Equal(t, runID, stored.RunID)
	assert.Equal(t, models.Route, stored.Key)

	_, err = svc.Lookup(context.Background(), models.ShakeUpModel, "AQU", raceDate, "D", models.Route)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReportServicePersistMissingTable(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), newFakeRepository(), map[models.Model]string{})
	days, err := svc.BuildDays(charttest.Charts(charttest.TwoRaceCard(t)), models.ShakeUpModel)
	require.NoError(t, err)

	_, err = svc.Persist(context.Background(), days)
	assert.ErrorIs(t, err, models.ErrUnknownModel)
}

func TestReportServiceDayReport(t *testing.T) {
	svc := NewReportService(quietLogger(), guide.NewWriter("", 0), nil, testTables)

	var buf bytes.Buffer
	require.NoError(t, svc.DayReport(&buf, charttest.TwoRaceCard(t)))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "2024010501")
	assert.Contains(t, out, "2024010502")
}
