package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order represents a confirmed purchase. Only the status changes after
// creation; everything else is frozen at placement time.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          uuid.UUID   `json:"userId" db:"user_id"`
	TotalAmount     float64     `json:"totalAmount" db:"total_amount"`
	DeliveryAddress string      `json:"deliveryAddress" db:"delivery_address"`
	ContactNumber   string      `json:"contactNumber" db:"contact_number"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order. Quantity and price are
// snapshots taken at order time and never re-derived from the catalog.
type OrderItem struct {
	ID         uuid.UUID `json:"-" db:"id"`
	OrderID    uuid.UUID `json:"-" db:"order_id"`
	MedicineID uuid.UUID `json:"medicineId" db:"medicine_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	Price      float64   `json:"price" db:"price"`
	// Ordinal is the item's zero-based position in the submitted order;
	// listings sort on it since row IDs carry no sequence.
	Ordinal int `json:"-" db:"ordinal"`
}

// OrderItemDetail is an order item annotated with medicine details for
// order listings.
type OrderItemDetail struct {
	OrderItem
	MedicineName string `json:"medicineName" db:"medicine_name"`
	CompanyName  string `json:"companyName" db:"company_name"`
}

// OrderWithItems is an order with its full line-item set.
type OrderWithItems struct {
	Order
	Items []OrderItemDetail `json:"items"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	TotalAmount     float64            `json:"totalAmount"`
	DeliveryAddress string             `json:"deliveryAddress"`
	ContactNumber   string             `json:"contactNumber"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	MedicineID uuid.UUID `json:"medicineId"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
}
