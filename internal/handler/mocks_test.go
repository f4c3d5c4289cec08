package handler

import (
	"context"
	"net/http"
	"testing"

	"medimart/internal/middleware"
	"medimart/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (uuid.UUID, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.OrderWithItems, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderWithItems), args.Error(1)
}

func (m *MockOrderService) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) (model.OrderStatus, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Get(0).(model.OrderStatus), args.Error(1)
}

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.AddCartItemRequest) (uuid.UUID, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockCartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// MockStoreService is a mock implementation of service.StoreService.
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) FindNearby(ctx context.Context, location string, medicineID uuid.UUID) ([]model.NearbyStore, error) {
	args := m.Called(ctx, location, medicineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NearbyStore), args.Error(1)
}

func (m *MockStoreService) ListStores(ctx context.Context) ([]model.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Store), args.Error(1)
}

func (m *MockStoreService) ListInventory(ctx context.Context, storeID uuid.UUID) ([]model.InventoryItemDetail, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InventoryItemDetail), args.Error(1)
}

func (m *MockStoreService) Stock(ctx context.Context, req *model.StockRequest) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockStoreService) UpdateInventory(ctx context.Context, id uuid.UUID, req *model.UpdateInventoryRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

// MockMedicineService is a mock implementation of service.MedicineService.
type MockMedicineService struct {
	mock.Mock
}

func (m *MockMedicineService) List(ctx context.Context) ([]model.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medicine), args.Error(1)
}

func (m *MockMedicineService) Get(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medicine), args.Error(1)
}

func (m *MockMedicineService) Add(ctx context.Context, req *model.MedicineRequest) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockConsultationService is a mock implementation of service.ConsultationService.
type MockConsultationService struct {
	mock.Mock
}

func (m *MockConsultationService) ListDoctors(ctx context.Context, city, specialization string) ([]model.Doctor, error) {
	args := m.Called(ctx, city, specialization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockConsultationService) Book(ctx context.Context, userID uuid.UUID, req *model.BookConsultationRequest) (uuid.UUID, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockConsultationService) ListConsultations(ctx context.Context, userID uuid.UUID) ([]model.ConsultationDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConsultationDetail), args.Error(1)
}

func (m *MockConsultationService) Reschedule(ctx context.Context, consultationID, userID uuid.UUID, req *model.RescheduleConsultationRequest) error {
	args := m.Called(ctx, consultationID, userID, req)
	return args.Error(0)
}

func (m *MockConsultationService) Cancel(ctx context.Context, consultationID, userID uuid.UUID) error {
	args := m.Called(ctx, consultationID, userID)
	return args.Error(0)
}

// authedRequest attaches an authenticated user to the request context.
func authedRequest(t *testing.T, req *http.Request, userID uuid.UUID) *http.Request {
	t.Helper()
	return req.WithContext(middleware.WithUser(req.Context(), userID, "customer"))
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
