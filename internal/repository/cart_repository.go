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

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetByUser retrieves the user's cart, or nil when none exists.
func (r *cartRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `SELECT id, user_id FROM carts WHERE user_id = $1`

	var c model.Cart
	err := r.pool.QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return &c, nil
}

// Create creates an empty cart for the user.
func (r *cartRepository) Create(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	cart := &model.Cart{ID: uuid.New(), UserID: userID}

	query := `INSERT INTO carts (id, user_id) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, cart.ID, cart.UserID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create cart")
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	r.logger.Debug().
		Str("cart_id", cart.ID.String()).
		Str("user_id", userID.String()).
		Msg("cart created")

	return cart, nil
}

// ListItems retrieves the cart's items annotated with medicine details.
func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItemDetail, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.medicine_id, ci.quantity, ci.price,
		       m.name, m.company_name
		FROM cart_items ci
		JOIN medicines m ON ci.medicine_id = m.id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItemDetail
	for rows.Next() {
		var item model.CartItemDetail
		err := rows.Scan(&item.ID, &item.CartID, &item.MedicineID,
			&item.Quantity, &item.Price, &item.MedicineName, &item.CompanyName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// AddItem inserts a new cart item.
func (r *cartRepository) AddItem(ctx context.Context, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cart_id, medicine_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.CartID, item.MedicineID, item.Quantity, item.Price)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("cart_id", item.CartID.String()).
			Str("medicine_id", item.MedicineID.String()).
			Msg("failed to add cart item")
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// UpdateItemQuantity updates the quantity of a cart item.
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (bool, error) {
	query := `UPDATE cart_items SET quantity = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, quantity, itemID)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to update cart item")
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// RemoveItem deletes a cart item.
func (r *cartRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	query := `DELETE FROM cart_items WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, itemID)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to remove cart item")
		return false, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ClearItemsTx deletes every item in the user's cart within the provided
// transaction. The cart row itself survives, empty.
func (r *cartRepository) ClearItemsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	var cartID uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// No cart means nothing to clear.
			return nil
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to look up cart for clearing")
		return fmt.Errorf("failed to look up cart: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to clear cart items")
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	r.logger.Debug().
		Str("cart_id", cartID.String()).
		Int64("removed", tag.RowsAffected()).
		Msg("cart cleared")

	return nil
}
