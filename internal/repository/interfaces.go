package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/models"
)

// StoredRecord is a daily record as read back from storage.
type StoredRecord struct {
	daily.Record
	RunID     uuid.UUID `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyFigureRepository stores daily records, one table per pace model.
type DailyFigureRepository interface {
	EnsureSchema(ctx context.Context, table string) error
	Insert(ctx context.Context, table string, record daily.Record, runID uuid.UUID) (bool, error)
	Get(ctx context.Context, table, trackCode string, raceDate time.Time, surface string, key models.DistanceKey) (*StoredRecord, error)
}

// Store runs daily figure work atomically.
type Store interface {
	WithTransaction(ctx context.Context, fn func(repo DailyFigureRepository) error) error
}
