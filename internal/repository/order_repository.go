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

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// AcquireUserLock takes a transaction-scoped advisory lock keyed on the
// user's UUID text. Two concurrent checkouts for the same user block
// here rather than both reading the same cart contents.
func (r *orderRepository) AcquireUserLock(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID.String())
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID.String()).
			Msg("failed to acquire checkout lock")
		return fmt.Errorf("failed to acquire checkout lock: %w", err)
	}
	return nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, user_id, total_amount, delivery_address, contact_number, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query,
		order.ID, order.UserID, order.TotalAmount,
		order.DeliveryAddress, order.ContactNumber, order.Status, order.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, medicine_id, quantity, price, ordinal)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.OrderID, item.MedicineID, item.Quantity, item.Price, item.Ordinal)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Str("medicine_id", items[i].MedicineID.String()).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by its ID regardless of status.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `
		SELECT id, user_id, total_amount, delivery_address, contact_number, status, created_at
		FROM orders
		WHERE id = $1
	`

	var o model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.TotalAmount,
		&o.DeliveryAddress, &o.ContactNumber, &o.Status, &o.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

// ListByUser retrieves a user's orders, newest first.
func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	query := `
		SELECT id, user_id, total_amount, delivery_address, contact_number, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount,
			&o.DeliveryAddress, &o.ContactNumber, &o.Status, &o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// ListItems retrieves the line items for a set of orders, annotated with
// medicine details.
func (r *orderRepository) ListItems(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItemDetail, error) {
	if len(orderIDs) == 0 {
		return []model.OrderItemDetail{}, nil
	}

	query := `
		SELECT oi.id, oi.order_id, oi.medicine_id, oi.quantity, oi.price, oi.ordinal,
		       m.name, m.company_name
		FROM order_items oi
		JOIN medicines m ON oi.medicine_id = m.id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.ordinal
	`

	rows, err := r.pool.Query(ctx, query, orderIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("order_count", len(orderIDs)).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItemDetail
	for rows.Next() {
		var item model.OrderItemDetail
		err := rows.Scan(&item.ID, &item.OrderID, &item.MedicineID,
			&item.Quantity, &item.Price, &item.Ordinal, &item.MedicineName, &item.CompanyName)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// MarkCancelled flips a pending order owned by the given user to
// cancelled. The write is conditional: it affects zero rows when the
// order is absent, foreign, or no longer pending.
func (r *orderRepository) MarkCancelled(ctx context.Context, orderID, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND user_id = $3 AND status = $4
	`

	tag, err := r.pool.Exec(ctx, query,
		model.OrderStatusCancelled, orderID, userID, model.OrderStatusPending)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID.String()).
			Msg("failed to cancel order")
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}

	matched := tag.RowsAffected() > 0
	r.logger.Debug().
		Str("order_id", orderID.String()).
		Bool("matched", matched).
		Msg("order cancellation attempted")

	return matched, nil
}
