package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medimart/internal/model"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, filePath string) ([]model.Medicine, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medicine), args.Error(1)
}

type MockMedicineRepository struct {
	mock.Mock
}

func (m *MockMedicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) Create(ctx context.Context, med *model.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) BulkUpsert(ctx context.Context, meds []model.Medicine) error {
	args := m.Called(ctx, meds)
	return args.Error(0)
}

func testCatalogMedicine(name string) model.Medicine {
	return model.Medicine{
		ID:          uuid.New(),
		Name:        name,
		Type:        "tablet",
		CompanyName: "Cipla",
		Composition: "Paracetamol",
		Price:       25.50,
		CreatedAt:   time.Now(),
	}
}

func TestImporter_ImportFile_Success(t *testing.T) {
	loader := new(MockLoader)
	repo := new(MockMedicineRepository)
	importer := NewImporter(loader, repo, zerolog.Nop())

	meds := []model.Medicine{
		testCatalogMedicine("Paracetamol 500mg"),
		testCatalogMedicine("Ibuprofen 400mg"),
	}
	loader.On("Load", mock.Anything, "data/catalog/medicines.csv.gz").Return(meds, nil)
	repo.On("BulkUpsert", mock.Anything, meds).Return(nil)

	count, err := importer.ImportFile(context.Background(), "data/catalog/medicines.csv.gz")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	loader.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestImporter_ImportFile_EmptyFile(t *testing.T) {
	loader := new(MockLoader)
	repo := new(MockMedicineRepository)
	importer := NewImporter(loader, repo, zerolog.Nop())

	loader.On("Load", mock.Anything, "empty.csv.gz").Return([]model.Medicine{}, nil)

	count, err := importer.ImportFile(context.Background(), "empty.csv.gz")

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	repo.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
}

func TestImporter_ImportFile_LoadError(t *testing.T) {
	loader := new(MockLoader)
	repo := new(MockMedicineRepository)
	importer := NewImporter(loader, repo, zerolog.Nop())

	loader.On("Load", mock.Anything, "missing.csv.gz").Return(nil, errors.New("file not found"))

	count, err := importer.ImportFile(context.Background(), "missing.csv.gz")

	require.Error(t, err)
	assert.Equal(t, 0, count)
	repo.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
}

func TestImporter_ImportFile_UpsertError(t *testing.T) {
	loader := new(MockLoader)
	repo := new(MockMedicineRepository)
	importer := NewImporter(loader, repo, zerolog.Nop())

	meds := []model.Medicine{testCatalogMedicine("Paracetamol 500mg")}
	loader.On("Load", mock.Anything, "medicines.csv.gz").Return(meds, nil)
	repo.On("BulkUpsert", mock.Anything, meds).Return(errors.New("database error"))

	count, err := importer.ImportFile(context.Background(), "medicines.csv.gz")

	require.Error(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, err.Error(), "failed to upsert catalog")
}

func TestImporter_ImportDir(t *testing.T) {
	repo := new(MockMedicineRepository)

	dir := t.TempDir()
	writeCatalogFile(t, dir, "a.csv.gz", []string{
		catalogLine(uuid.New(), "Paracetamol 500mg", 25.50),
	})
	writeCatalogFile(t, dir, "b.csv.gz", []string{
		catalogLine(uuid.New(), "Ibuprofen 400mg", 32),
	})

	repo.On("BulkUpsert", mock.Anything, mock.Anything).Return(nil).Twice()

	importer := NewImporter(NewFileLoader(zerolog.Nop()), repo, zerolog.Nop())

	count, err := importer.ImportDir(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	repo.AssertExpectations(t)
}

func TestImporter_ImportDir_EmptyDir(t *testing.T) {
	repo := new(MockMedicineRepository)
	importer := NewImporter(NewFileLoader(zerolog.Nop()), repo, zerolog.Nop())

	count, err := importer.ImportDir(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	repo.AssertNotCalled(t, "BulkUpsert", mock.Anything, mock.Anything)
}
