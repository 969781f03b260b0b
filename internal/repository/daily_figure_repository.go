package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/result-reporter/internal/config"
	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/database"
	"github.com/yourusername/result-reporter/internal/models"
)

// ErrInvalidTable is returned for table names that are not plain identifiers.
var ErrInvalidTable = errors.New("invalid table name")

const createDailyFigureTable = `
	CREATE TABLE IF NOT EXISTS %s (
		track_code   TEXT NOT NULL,
		course       TEXT NOT NULL,
		distance_key TEXT NOT NULL,
		race_date    DATE NOT NULL,
		min_fr1      DOUBLE PRECISION NOT NULL,
		max_fr1      DOUBLE PRECISION NOT NULL,
		min_fr2      DOUBLE PRECISION NOT NULL,
		max_fr2      DOUBLE PRECISION NOT NULL,
		min_fr3      DOUBLE PRECISION NOT NULL,
		max_fr3      DOUBLE PRECISION NOT NULL,
		comment      TEXT NOT NULL,
		run_id       UUID NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (track_code, race_date, course, distance_key)
	)
`

const insertDailyFigure = `
	INSERT INTO %s (track_code, course, distance_key, race_date,
		min_fr1, max_fr1, min_fr2, max_fr2, min_fr3, max_fr3, comment, run_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT DO NOTHING
`

const selectDailyFigure = `
	SELECT race_date, min_fr1, max_fr1, min_fr2, max_fr2, min_fr3, max_fr3,
	       comment, run_id, created_at
	FROM %s
	WHERE track_code = $1 AND race_date = $2 AND course = $3 AND distance_key = $4
`

// PostgresDailyFigureRepository implements DailyFigureRepository for PostgreSQL
type PostgresDailyFigureRepository struct {
	db database.Querier
}

// NewPostgresDailyFigureRepository creates a new daily figure repository
func NewPostgresDailyFigureRepository(db database.Querier) DailyFigureRepository {
	return &PostgresDailyFigureRepository{db: db}
}

func checkTable(table string) error {
	if !config.IsTableName(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}

// EnsureSchema creates the table if it does not exist
func (r *PostgresDailyFigureRepository) EnsureSchema(ctx context.Context, table string) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, fmt.Sprintf(createDailyFigureTable, table)); err != nil {
		return fmt.Errorf("failed to create %s: %w", table, err)
	}
	return nil
}

// Insert stores a record. It reports false without error when a record with
// the same track, date, course and distance bucket already exists.
func (r *PostgresDailyFigureRepository) Insert(ctx context.Context, table string, record daily.Record, runID uuid.UUID) (bool, error) {
	if err := checkTable(table); err != nil {
		return false, err
	}

	args := []any{record.TrackCode, record.Surface, record.Key.String()}
	args = append(args, record.Values()...)
	args = append(args, runID)

	tag, err := r.db.Exec(ctx, fmt.Sprintf(insertDailyFigure, table), args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert daily figures: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get retrieves the record for a track, date, course and distance bucket
func (r *PostgresDailyFigureRepository) Get(ctx context.Context, table, trackCode string, raceDate time.Time, surface string, key models.DistanceKey) (*StoredRecord, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	stored := &StoredRecord{}
	stored.TrackCode = trackCode
	stored.Surface = surface
	stored.Key = key

	var values [6]float64
	err := r.db.QueryRow(ctx, fmt.Sprintf(selectDailyFigure, table), trackCode, raceDate, surface, key.String()).Scan(
		&stored.RaceDate,
		&values[0], &values[1], &values[2], &values[3], &values[4], &values[5],
		&stored.Comment, &stored.RunID, &stored.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily figures: %w", err)
	}

	for i := range stored.Minimums {
		stored.Minimums[i] = models.NewFigure(values[2*i])
		stored.Maximums[i] = models.NewFigure(values[2*i+1])
	}
	return stored, nil
}
