package repository

import (
	"context"
	"time"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// AcquireUserLock takes a transaction-scoped advisory lock keyed on
	// the user so concurrent checkouts for the same user serialize. The
	// lock is released automatically at commit or rollback.
	AcquireUserLock(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID regardless of status.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListItems retrieves the line items for a set of orders, annotated
	// with medicine details.
	ListItems(ctx context.Context, orderIDs []uuid.UUID) ([]model.OrderItemDetail, error)

	// MarkCancelled flips a pending order owned by the given user to
	// cancelled. Returns true only when a row actually changed.
	MarkCancelled(ctx context.Context, orderID, userID uuid.UUID) (bool, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// GetByUser retrieves the user's cart, or nil when none exists.
	GetByUser(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// Create creates an empty cart for the user.
	Create(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// ListItems retrieves the cart's items annotated with medicine details.
	ListItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItemDetail, error)

	// AddItem inserts a new cart item.
	AddItem(ctx context.Context, item *model.CartItem) error

	// UpdateItemQuantity updates the quantity of a cart item. Returns
	// false when no such item exists.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (bool, error)

	// RemoveItem deletes a cart item. Returns false when no such item exists.
	RemoveItem(ctx context.Context, itemID uuid.UUID) (bool, error)

	// ClearItemsTx deletes every item in the user's cart within the
	// provided transaction. The cart row itself survives. A user with no
	// cart is a no-op.
	ClearItemsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error
}

// StoreRepository defines the interface for pharmacy store lookups.
type StoreRepository interface {
	// List retrieves stores ordered by name, optionally filtered by a
	// substring match against the free-text location field.
	List(ctx context.Context, locationFilter string) ([]model.Store, error)
}

// InventoryRepository defines the interface for per-store stock records.
type InventoryRepository interface {
	// Upsert creates the (store, medicine) record or increments its
	// stock by the given quantity, replacing the expiry date either way.
	// Returns the record's ID.
	Upsert(ctx context.Context, rec *model.InventoryRecord) (uuid.UUID, error)

	// Update replaces stock, expiry, price and availability wholesale.
	// Returns false when no record with that ID exists.
	Update(ctx context.Context, id uuid.UUID, params *model.UpdateInventoryParams) (bool, error)

	// ListByStore retrieves a store's inventory annotated with medicine details.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.InventoryItemDetail, error)

	// AvailabilityByStore returns stock quantities for one medicine
	// across the given stores, restricted to available records.
	AvailabilityByStore(ctx context.Context, medicineID uuid.UUID, storeIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// MedicineRepository defines the interface for the medicine catalog.
type MedicineRepository interface {
	// List retrieves all medicines ordered by name.
	List(ctx context.Context) ([]model.Medicine, error)

	// GetByID retrieves a single medicine, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error)

	// Create inserts a new medicine.
	Create(ctx context.Context, med *model.Medicine) error

	// BulkUpsert inserts or replaces a batch of medicines by ID. Used by
	// the catalog importer.
	BulkUpsert(ctx context.Context, meds []model.Medicine) error
}

// DoctorRepository defines the interface for doctor lookups.
type DoctorRepository interface {
	// List retrieves doctors ordered by rating, optionally filtered by
	// city (exact) and specialization (substring).
	List(ctx context.Context, city, specialization string) ([]model.Doctor, error)

	// GetByID retrieves a single doctor, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
}

// ConsultationRepository defines the interface for appointment bookings.
type ConsultationRepository interface {
	// Create inserts a new consultation.
	Create(ctx context.Context, c *model.Consultation) error

	// GetByID retrieves a single consultation, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Consultation, error)

	// ListByUser retrieves a user's consultations, newest first,
	// annotated with doctor details.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ConsultationDetail, error)

	// Reschedule moves a consultation owned by the given user to a new
	// date and time slot. Returns true only when a row actually changed.
	Reschedule(ctx context.Context, consultationID, userID uuid.UUID, date time.Time, timeSlot string) (bool, error)

	// MarkCancelled flips a pending consultation owned by the given user
	// to cancelled. Returns true only when a row actually changed.
	MarkCancelled(ctx context.Context, consultationID, userID uuid.UUID) (bool, error)
}
