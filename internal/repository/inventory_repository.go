package repository

import (
	"context"
	"fmt"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// inventoryRepository implements the InventoryRepository interface using PostgreSQL.
type inventoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInventoryRepository creates a new PostgreSQL-backed inventory repository.
func NewInventoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) InventoryRepository {
	return &inventoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "inventory").Logger(),
	}
}

// Upsert creates the (store, medicine) record or increments its stock by
// the given quantity. The expiry date is replaced either way, so a record
// only ever tracks the most recent batch's expiry.
func (r *inventoryRepository) Upsert(ctx context.Context, rec *model.InventoryRecord) (uuid.UUID, error) {
	query := `
		INSERT INTO store_inventory (id, store_id, medicine_id, stock_quantity, expiry_date, price, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (store_id, medicine_id) DO UPDATE
		SET stock_quantity = store_inventory.stock_quantity + EXCLUDED.stock_quantity,
		    expiry_date = EXCLUDED.expiry_date
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		uuid.New(), rec.StoreID, rec.MedicineID,
		rec.StockQuantity, rec.ExpiryDate, rec.Price).Scan(&id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("store_id", rec.StoreID.String()).
			Str("medicine_id", rec.MedicineID.String()).
			Msg("failed to upsert inventory record")
		return uuid.Nil, fmt.Errorf("failed to upsert inventory record: %w", err)
	}

	r.logger.Debug().
		Str("inventory_id", id.String()).
		Int("quantity", rec.StockQuantity).
		Msg("inventory stocked")

	return id, nil
}

// Update replaces stock, expiry, price and availability wholesale. This
// is the correction path; it never increments.
func (r *inventoryRepository) Update(ctx context.Context, id uuid.UUID, params *model.UpdateInventoryParams) (bool, error) {
	query := `
		UPDATE store_inventory
		SET stock_quantity = $1, expiry_date = $2, price = $3, is_available = $4
		WHERE id = $5
	`

	tag, err := r.pool.Exec(ctx, query,
		params.StockQuantity, params.ExpiryDate, params.Price, params.IsAvailable, id)
	if err != nil {
		r.logger.Error().Err(err).Str("inventory_id", id.String()).Msg("failed to update inventory record")
		return false, fmt.Errorf("failed to update inventory record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListByStore retrieves a store's inventory annotated with medicine details.
func (r *inventoryRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.InventoryItemDetail, error) {
	query := `
		SELECT si.id, si.store_id, si.medicine_id, si.stock_quantity, si.expiry_date,
		       si.price, si.is_available, m.name, m.type, m.company_name
		FROM store_inventory si
		JOIN medicines m ON si.medicine_id = m.id
		WHERE si.store_id = $1
		ORDER BY m.name
	`

	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		r.logger.Error().Err(err).Str("store_id", storeID.String()).Msg("failed to query store inventory")
		return nil, fmt.Errorf("failed to query store inventory: %w", err)
	}
	defer rows.Close()

	var items []model.InventoryItemDetail
	for rows.Next() {
		var item model.InventoryItemDetail
		err := rows.Scan(&item.ID, &item.StoreID, &item.MedicineID,
			&item.StockQuantity, &item.ExpiryDate, &item.Price, &item.IsAvailable,
			&item.MedicineName, &item.Type, &item.CompanyName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan inventory row")
			return nil, fmt.Errorf("failed to scan inventory record: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating inventory rows")
		return nil, fmt.Errorf("error iterating inventory records: %w", err)
	}

	return items, nil
}

// AvailabilityByStore returns stock quantities for one medicine across
// the given stores, restricted to available records. A record flagged
// available with stock zero still appears in the result.
func (r *inventoryRepository) AvailabilityByStore(ctx context.Context, medicineID uuid.UUID, storeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	availability := make(map[uuid.UUID]int, len(storeIDs))
	if len(storeIDs) == 0 {
		return availability, nil
	}

	query := `
		SELECT store_id, stock_quantity
		FROM store_inventory
		WHERE medicine_id = $1 AND store_id = ANY($2) AND is_available = TRUE
	`

	rows, err := r.pool.Query(ctx, query, medicineID, storeIDs)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("medicine_id", medicineID.String()).
			Int("store_count", len(storeIDs)).
			Msg("failed to query availability")
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var storeID uuid.UUID
		var stock int
		if err := rows.Scan(&storeID, &stock); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan availability row")
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		availability[storeID] = stock
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating availability rows")
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return availability, nil
}
