package model

import (
	"time"

	"github.com/google/uuid"
)

// Store is a pharmacy location. Read-only in this service; stores are
// provisioned out of band.
type Store struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	ContactNo string    `json:"contactNo" db:"contact_no"`
	Location  string    `json:"location" db:"location"`
}

// NearbyStore is a store annotated with availability of a requested
// medicine. The annotation fields are only populated (non-nil) when the
// caller asked about a specific medicine.
type NearbyStore struct {
	Store
	HasMedicine *bool `json:"hasMedicine,omitempty"`
	Stock       *int  `json:"stock,omitempty"`
}

// InventoryRecord is the stock state of one medicine at one store. The
// (store, medicine) pair is unique.
type InventoryRecord struct {
	ID            uuid.UUID `json:"id" db:"id"`
	StoreID       uuid.UUID `json:"storeId" db:"store_id"`
	MedicineID    uuid.UUID `json:"medicineId" db:"medicine_id"`
	StockQuantity int       `json:"stockQuantity" db:"stock_quantity"`
	ExpiryDate    time.Time `json:"expiryDate" db:"expiry_date"`
	Price         float64   `json:"price" db:"price"`
	IsAvailable   bool      `json:"isAvailable" db:"is_available"`
}

// InventoryItemDetail is an inventory record annotated with medicine
// details for store inventory listings.
type InventoryItemDetail struct {
	InventoryRecord
	MedicineName string `json:"medicineName" db:"medicine_name"`
	Type         string `json:"type" db:"type"`
	CompanyName  string `json:"companyName" db:"company_name"`
}

// UpdateInventoryParams carries the parsed values for a full inventory
// replace.
type UpdateInventoryParams struct {
	StockQuantity int
	ExpiryDate    time.Time
	Price         float64
	IsAvailable   bool
}

// StockRequest represents the restocking payload. Restocking increments
// existing stock rather than replacing it.
type StockRequest struct {
	StoreID       uuid.UUID `json:"storeId"`
	MedicineID    uuid.UUID `json:"medicineId"`
	StockQuantity int       `json:"stockQuantity"`
	ExpiryDate    string    `json:"expiryDate"`
}

// UpdateInventoryRequest represents the correction payload. All four
// fields are replaced wholesale, in contrast to the restocking path.
type UpdateInventoryRequest struct {
	StockQuantity int     `json:"stockQuantity"`
	ExpiryDate    string  `json:"expiryDate"`
	Price         float64 `json:"price"`
	IsAvailable   bool    `json:"isAvailable"`
}
