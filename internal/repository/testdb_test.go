package repository

import (
	"context"
	"testing"
	"time"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := NewPool(ctx, connStr, DefaultDBConfig())
	require.NoError(t, err)

	// Create schema
	createSchema(t, pool)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// createSchema creates the full database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS medicines (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			company_name TEXT NOT NULL DEFAULT '',
			composition TEXT NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS medical_stores (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			contact_no TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS store_inventory (
			id UUID PRIMARY KEY,
			store_id UUID NOT NULL REFERENCES medical_stores(id),
			medicine_id UUID NOT NULL REFERENCES medicines(id),
			stock_quantity INTEGER NOT NULL CHECK (stock_quantity >= 0),
			expiry_date DATE NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			UNIQUE (store_id, medicine_id)
		);

		CREATE TABLE IF NOT EXISTS carts (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS cart_items (
			id UUID PRIMARY KEY,
			cart_id UUID NOT NULL REFERENCES carts(id),
			medicine_id UUID NOT NULL REFERENCES medicines(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price DECIMAL(10,2) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			total_amount DECIMAL(10,2) NOT NULL,
			delivery_address TEXT NOT NULL,
			contact_number TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			medicine_id UUID NOT NULL REFERENCES medicines(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price DECIMAL(10,2) NOT NULL,
			ordinal INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS doctors (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			specialization TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			rating DECIMAL(2,1) NOT NULL DEFAULT 0,
			consultation_fee DECIMAL(10,2) NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS consultations (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			doctor_id UUID NOT NULL REFERENCES doctors(id),
			appointment_date DATE NOT NULL,
			appointment_time TEXT NOT NULL,
			symptoms TEXT NOT NULL DEFAULT '',
			consultation_fee DECIMAL(10,2) NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}

// seedMedicines inserts test medicines into the database.
func seedMedicines(t *testing.T, pool *pgxpool.Pool, meds []model.Medicine) {
	ctx := context.Background()

	query := `
		INSERT INTO medicines (id, name, type, company_name, composition, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, m := range meds {
		_, err := pool.Exec(ctx, query, m.ID, m.Name, m.Type, m.CompanyName, m.Composition, m.Price, m.CreatedAt)
		require.NoError(t, err)
	}
}

// seedStores inserts test stores into the database.
func seedStores(t *testing.T, pool *pgxpool.Pool, stores []model.Store) {
	ctx := context.Background()

	query := `
		INSERT INTO medical_stores (id, name, address, contact_no, location)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, s := range stores {
		_, err := pool.Exec(ctx, query, s.ID, s.Name, s.Address, s.ContactNo, s.Location)
		require.NoError(t, err)
	}
}

// testMedicine returns a medicine with sensible defaults.
func testMedicine(name string) model.Medicine {
	return model.Medicine{
		ID:          uuid.New(),
		Name:        name,
		Type:        "tablet",
		CompanyName: "Acme Pharma",
		Composition: "paracetamol 500mg",
		Price:       50,
		CreatedAt:   time.Now().UTC(),
	}
}

// testStore returns a store with sensible defaults.
func testStore(name, location string) model.Store {
	return model.Store{
		ID:        uuid.New(),
		Name:      name,
		Address:   "12 Main Road",
		ContactNo: "9876500000",
		Location:  location,
	}
}
