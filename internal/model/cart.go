package model

import "github.com/google/uuid"

// Cart is a user's pending, unconfirmed selection. One active cart per
// user, created lazily on first add and never deleted; checkout only
// empties its item set.
type Cart struct {
	ID     uuid.UUID `json:"cartId" db:"id"`
	UserID uuid.UUID `json:"userId" db:"user_id"`
}

// CartItem is a single cart line. Price is a snapshot taken at add time
// so cart totals never shift when the catalog price changes.
type CartItem struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CartID     uuid.UUID `json:"-" db:"cart_id"`
	MedicineID uuid.UUID `json:"medicineId" db:"medicine_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	Price      float64   `json:"price" db:"price"`
}

// CartItemDetail is a cart item annotated with medicine details.
type CartItemDetail struct {
	CartItem
	MedicineName string `json:"medicineName" db:"medicine_name"`
	CompanyName  string `json:"companyName" db:"company_name"`
}

// CartResponse represents the response payload for reading a cart.
// CartID is null when the user has never added an item.
type CartResponse struct {
	CartID *uuid.UUID       `json:"cartId"`
	Items  []CartItemDetail `json:"items"`
}

// AddCartItemRequest represents the request payload for adding an item.
type AddCartItemRequest struct {
	MedicineID uuid.UUID `json:"medicineId"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
}

// UpdateCartItemRequest represents a quantity change for a cart item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
