package service

import (
	"context"

	"medimart/internal/model"

	"github.com/google/uuid"
)

// OrderService defines operations for order management.
type OrderService interface {
	// PlaceOrder atomically creates an order with its items and empties
	// the user's cart. Returns the new order's ID.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (uuid.UUID, error)

	// ListOrders retrieves the user's orders with their items, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]model.OrderWithItems, error)

	// CancelOrder cancels a pending order owned by the user. Returns the
	// order's resulting status; cancelling an already-cancelled order is
	// a no-op.
	CancelOrder(ctx context.Context, orderID, userID uuid.UUID) (model.OrderStatus, error)
}

// CartService defines operations for the user's pending selection.
type CartService interface {
	// GetCart retrieves the user's cart with its items. A user who never
	// added anything gets an empty response with a null cart ID.
	GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)

	// AddItem adds a medicine to the user's cart, creating the cart on
	// first use. Returns the new item's ID.
	AddItem(ctx context.Context, userID uuid.UUID, req *model.AddCartItemRequest) (uuid.UUID, error)

	// UpdateItemQuantity changes the quantity of a cart item.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// RemoveItem deletes a cart item.
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

// StoreService defines operations for pharmacy lookups and inventory.
type StoreService interface {
	// FindNearby retrieves stores matching a location filter, annotated
	// with stock for the given medicine when one is supplied (uuid.Nil
	// means no medicine filter).
	FindNearby(ctx context.Context, location string, medicineID uuid.UUID) ([]model.NearbyStore, error)

	// ListStores retrieves all stores.
	ListStores(ctx context.Context) ([]model.Store, error)

	// ListInventory retrieves a store's inventory with medicine details.
	ListInventory(ctx context.Context, storeID uuid.UUID) ([]model.InventoryItemDetail, error)

	// Stock adds stock of a medicine to a store, creating the inventory
	// record or incrementing the existing one. Returns the record's ID.
	Stock(ctx context.Context, req *model.StockRequest) (uuid.UUID, error)

	// UpdateInventory replaces an inventory record's stock, expiry,
	// price and availability wholesale.
	UpdateInventory(ctx context.Context, id uuid.UUID, req *model.UpdateInventoryRequest) error
}

// MedicineService defines operations for the medicine catalog.
type MedicineService interface {
	// List retrieves all medicines.
	List(ctx context.Context) ([]model.Medicine, error)

	// Get retrieves a single medicine.
	Get(ctx context.Context, id uuid.UUID) (*model.Medicine, error)

	// Add creates a new catalog entry. Returns the new medicine's ID.
	Add(ctx context.Context, req *model.MedicineRequest) (uuid.UUID, error)
}

// ConsultationService defines operations for doctor appointments.
type ConsultationService interface {
	// ListDoctors retrieves doctors, optionally filtered by city and
	// specialization.
	ListDoctors(ctx context.Context, city, specialization string) ([]model.Doctor, error)

	// Book creates a consultation with a doctor and notifies both
	// parties. Returns the new consultation's ID.
	Book(ctx context.Context, userID uuid.UUID, req *model.BookConsultationRequest) (uuid.UUID, error)

	// ListConsultations retrieves the user's consultations, newest first.
	ListConsultations(ctx context.Context, userID uuid.UUID) ([]model.ConsultationDetail, error)

	// Reschedule moves a consultation owned by the user to a new date
	// and time slot, notifying both the patient and the doctor.
	Reschedule(ctx context.Context, consultationID, userID uuid.UUID, req *model.RescheduleConsultationRequest) error

	// Cancel cancels a pending consultation owned by the user.
	Cancel(ctx context.Context, consultationID, userID uuid.UUID) error
}
