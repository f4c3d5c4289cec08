package model

import (
	"time"

	"github.com/google/uuid"
)

// Medicine represents a catalog entry.
type Medicine struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	CompanyName string    `json:"companyName" db:"company_name"`
	Composition string    `json:"composition" db:"composition"`
	Price       float64   `json:"price" db:"price"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// MedicineRequest represents the request payload for adding a medicine.
type MedicineRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Company     string  `json:"company"`
	Composition string  `json:"composition"`
	Price       float64 `json:"price"`
}
