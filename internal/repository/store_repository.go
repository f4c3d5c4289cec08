package repository

import (
	"context"
	"fmt"

	"medimart/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// storeRepository implements the StoreRepository interface using PostgreSQL.
type storeRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStoreRepository creates a new PostgreSQL-backed store repository.
func NewStoreRepository(pool *pgxpool.Pool, logger zerolog.Logger) StoreRepository {
	return &storeRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "store").Logger(),
	}
}

// List retrieves stores ordered by name. A non-empty locationFilter
// narrows the result to stores whose free-text location contains the
// filter. This is substring containment, not a geographic radius.
func (r *storeRepository) List(ctx context.Context, locationFilter string) ([]model.Store, error) {
	query := `
		SELECT id, name, address, contact_no, location
		FROM medical_stores
	`
	args := []any{}
	if locationFilter != "" {
		query += ` WHERE location LIKE '%' || $1 || '%'`
		args = append(args, locationFilter)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("location", locationFilter).Msg("failed to query stores")
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []model.Store
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.ContactNo, &s.Location); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan store row")
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating store rows")
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}

	return stores, nil
}
