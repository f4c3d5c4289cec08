package repository

import (
	"context"
	"fmt"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// medicineRepository implements the MedicineRepository interface using PostgreSQL.
type medicineRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMedicineRepository creates a new PostgreSQL-backed medicine repository.
func NewMedicineRepository(pool *pgxpool.Pool, logger zerolog.Logger) MedicineRepository {
	return &medicineRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "medicine").Logger(),
	}
}

// List retrieves all medicines ordered by name.
func (r *medicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	query := `
		SELECT id, name, type, company_name, composition, price, created_at
		FROM medicines
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query medicines")
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	var medicines []model.Medicine
	for rows.Next() {
		var m model.Medicine
		err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.CompanyName, &m.Composition, &m.Price, &m.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan medicine row")
			return nil, fmt.Errorf("failed to scan medicine: %w", err)
		}
		medicines = append(medicines, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating medicine rows")
		return nil, fmt.Errorf("error iterating medicines: %w", err)
	}

	return medicines, nil
}

// GetByID retrieves a single medicine, or nil when absent.
func (r *medicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	query := `
		SELECT id, name, type, company_name, composition, price, created_at
		FROM medicines
		WHERE id = $1
	`

	var m model.Medicine
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Type, &m.CompanyName, &m.Composition, &m.Price, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("medicine_id", id.String()).Msg("medicine not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("medicine_id", id.String()).Msg("failed to query medicine")
		return nil, fmt.Errorf("failed to query medicine: %w", err)
	}

	return &m, nil
}

// Create inserts a new medicine.
func (r *medicineRepository) Create(ctx context.Context, med *model.Medicine) error {
	query := `
		INSERT INTO medicines (id, name, type, company_name, composition, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		med.ID, med.Name, med.Type, med.CompanyName, med.Composition, med.Price, med.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", med.Name).Msg("failed to create medicine")
		return fmt.Errorf("failed to create medicine: %w", err)
	}

	r.logger.Debug().Str("medicine_id", med.ID.String()).Msg("medicine created")

	return nil
}

// BulkUpsert inserts or replaces a batch of medicines by ID.
func (r *medicineRepository) BulkUpsert(ctx context.Context, meds []model.Medicine) error {
	if len(meds) == 0 {
		return nil
	}

	query := `
		INSERT INTO medicines (id, name, type, company_name, composition, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    type = EXCLUDED.type,
		    company_name = EXCLUDED.company_name,
		    composition = EXCLUDED.composition,
		    price = EXCLUDED.price
	`

	batch := &pgx.Batch{}
	for _, m := range meds {
		batch.Queue(query, m.ID, m.Name, m.Type, m.CompanyName, m.Composition, m.Price, m.CreatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(meds); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Str("medicine_id", meds[i].ID.String()).Msg("failed to upsert medicine")
			return fmt.Errorf("failed to upsert medicine: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(meds)).Msg("medicines upserted")

	return nil
}
