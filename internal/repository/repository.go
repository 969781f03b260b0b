package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/result-reporter/internal/database"
)

type transactor interface {
	WithTransaction(ctx context.Context, fn func(q database.Querier) error) error
}

// Repositories opens repositories over a database connection
type Repositories struct {
	tx transactor
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{tx: db}, nil
}

// WithTransaction runs fn against a daily figure repository bound to one
// transaction. The transaction commits only when fn returns nil.
func (r *Repositories) WithTransaction(ctx context.Context, fn func(repo DailyFigureRepository) error) error {
	return r.tx.WithTransaction(ctx, func(q database.Querier) error {
		return fn(NewPostgresDailyFigureRepository(q))
	})
}
