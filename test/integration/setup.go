package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

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
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedMedicines inserts medicines and returns them for reference.
func SeedMedicines(t *testing.T, pool *pgxpool.Pool) []model.Medicine {
	t.Helper()

	ctx := context.Background()

	medicines := []model.Medicine{
		{ID: uuid.New(), Name: "Paracetamol 500mg", Type: "tablet", CompanyName: "Cipla", Composition: "Paracetamol", Price: 25.50},
		{ID: uuid.New(), Name: "Ibuprofen 400mg", Type: "tablet", CompanyName: "Sun Pharma", Composition: "Ibuprofen", Price: 32.00},
		{ID: uuid.New(), Name: "Cetirizine 10mg", Type: "tablet", CompanyName: "Dr. Reddy's", Composition: "Cetirizine", Price: 18.00},
	}

	for _, m := range medicines {
		_, err := pool.Exec(ctx,
			"INSERT INTO medicines (id, name, type, company_name, composition, price) VALUES ($1, $2, $3, $4, $5, $6)",
			m.ID, m.Name, m.Type, m.CompanyName, m.Composition, m.Price,
		)
		if err != nil {
			t.Fatalf("failed to seed medicine %s: %v", m.Name, err)
		}
	}

	return medicines
}

// SeedStores inserts medical stores and returns them for reference.
func SeedStores(t *testing.T, pool *pgxpool.Pool) []model.Store {
	t.Helper()

	ctx := context.Background()

	stores := []model.Store{
		{ID: uuid.New(), Name: "City Pharmacy", Address: "12 MG Road", ContactNo: "9876500001", Location: "Indiranagar"},
		{ID: uuid.New(), Name: "Wellness Chemists", Address: "44 Brigade Road", ContactNo: "9876500002", Location: "Koramangala"},
	}

	for _, s := range stores {
		_, err := pool.Exec(ctx,
			"INSERT INTO medical_stores (id, name, address, contact_no, location) VALUES ($1, $2, $3, $4, $5)",
			s.ID, s.Name, s.Address, s.ContactNo, s.Location,
		)
		if err != nil {
			t.Fatalf("failed to seed store %s: %v", s.Name, err)
		}
	}

	return stores
}

// SeedDoctors inserts doctors and returns them for reference.
func SeedDoctors(t *testing.T, pool *pgxpool.Pool) []model.Doctor {
	t.Helper()

	ctx := context.Background()

	doctors := []model.Doctor{
		{ID: uuid.New(), Name: "Dr. Mehta", Specialization: "General Physician", City: "Bangalore", Phone: "9876511111", Rating: 4.5, ConsultationFee: 500},
		{ID: uuid.New(), Name: "Dr. Rao", Specialization: "Dermatologist", City: "Mumbai", Phone: "9876522222", Rating: 4.2, ConsultationFee: 800},
	}

	for _, d := range doctors {
		_, err := pool.Exec(ctx,
			"INSERT INTO doctors (id, name, specialization, city, phone, rating, consultation_fee) VALUES ($1, $2, $3, $4, $5, $6, $7)",
			d.ID, d.Name, d.Specialization, d.City, d.Phone, d.Rating, d.ConsultationFee,
		)
		if err != nil {
			t.Fatalf("failed to seed doctor %s: %v", d.Name, err)
		}
	}

	return doctors
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"order_items", "orders",
		"cart_items", "carts",
		"consultations", "doctors",
		"store_inventory", "medical_stores",
		"medicines",
	}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
