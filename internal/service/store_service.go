package service

import (
	"context"
	"fmt"
	"time"

	"medimart/internal/model"
	"medimart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// expiryDateLayout is the wire format for expiry dates.
const expiryDateLayout = "2006-01-02"

// storeService implements StoreService.
type storeService struct {
	storeRepo     repository.StoreRepository
	inventoryRepo repository.InventoryRepository
	medicineRepo  repository.MedicineRepository
	logger        zerolog.Logger
}

// NewStoreService creates a new store service.
func NewStoreService(
	storeRepo repository.StoreRepository,
	inventoryRepo repository.InventoryRepository,
	medicineRepo repository.MedicineRepository,
	logger zerolog.Logger,
) StoreService {
	return &storeService{
		storeRepo:     storeRepo,
		inventoryRepo: inventoryRepo,
		medicineRepo:  medicineRepo,
		logger:        logger.With().Str("service", "store").Logger(),
	}
}

// FindNearby retrieves stores matching a location filter. When a
// medicine is supplied, every result is annotated with whether that
// store stocks it and how much; stores are selected first and annotated
// second, so a store with no stock is still returned.
func (s *storeService) FindNearby(ctx context.Context, location string, medicineID uuid.UUID) ([]model.NearbyStore, error) {
	stores, err := s.storeRepo.List(ctx, location)
	if err != nil {
		s.logger.Error().Err(err).Str("location", location).Msg("failed to list stores")
		return nil, fmt.Errorf("failed to find stores: %w", err)
	}

	result := make([]model.NearbyStore, len(stores))
	for i, st := range stores {
		result[i] = model.NearbyStore{Store: st}
	}

	if medicineID == uuid.Nil || len(stores) == 0 {
		return result, nil
	}

	storeIDs := make([]uuid.UUID, len(stores))
	for i, st := range stores {
		storeIDs[i] = st.ID
	}

	stock, err := s.inventoryRepo.AvailabilityByStore(ctx, medicineID, storeIDs)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("medicine_id", medicineID.String()).
			Msg("failed to load availability")
		return nil, fmt.Errorf("failed to find stores: %w", err)
	}

	for i := range result {
		// A zero-stock record that is still marked available counts as
		// stocked; callers read the quantity alongside the flag.
		qty, ok := stock[result[i].ID]
		result[i].HasMedicine = &ok
		result[i].Stock = &qty
	}

	return result, nil
}

// ListStores retrieves all stores.
func (s *storeService) ListStores(ctx context.Context) ([]model.Store, error) {
	stores, err := s.storeRepo.List(ctx, "")
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list stores")
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// ListInventory retrieves a store's inventory with medicine details.
func (s *storeService) ListInventory(ctx context.Context, storeID uuid.UUID) ([]model.InventoryItemDetail, error) {
	items, err := s.inventoryRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error().Err(err).Str("store_id", storeID.String()).Msg("failed to list inventory")
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// Stock adds stock of a medicine to a store. The first delivery creates
// the inventory record; later deliveries add to the existing quantity
// and carry the fresher expiry date.
func (s *storeService) Stock(ctx context.Context, req *model.StockRequest) (uuid.UUID, error) {
	if req == nil || req.StoreID == uuid.Nil || req.MedicineID == uuid.Nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Store ID and medicine ID are required")
	}
	if req.StockQuantity <= 0 {
		return uuid.Nil, model.ErrInvalidQuantity
	}

	expiry, err := time.Parse(expiryDateLayout, req.ExpiryDate)
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Expiry date must be YYYY-MM-DD")
	}

	med, err := s.medicineRepo.GetByID(ctx, req.MedicineID)
	if err != nil {
		s.logger.Error().Err(err).Str("medicine_id", req.MedicineID.String()).Msg("failed to look up medicine")
		return uuid.Nil, fmt.Errorf("failed to stock medicine: %w", err)
	}
	if med == nil {
		return uuid.Nil, model.ErrMedicineNotFound
	}

	rec := &model.InventoryRecord{
		StoreID:       req.StoreID,
		MedicineID:    req.MedicineID,
		StockQuantity: req.StockQuantity,
		ExpiryDate:    expiry,
		Price:         med.Price,
		IsAvailable:   true,
	}

	id, err := s.inventoryRepo.Upsert(ctx, rec)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("store_id", req.StoreID.String()).
			Str("medicine_id", req.MedicineID.String()).
			Msg("failed to upsert inventory")
		return uuid.Nil, fmt.Errorf("failed to stock medicine: %w", err)
	}

	s.logger.Info().
		Str("store_id", req.StoreID.String()).
		Str("medicine_id", req.MedicineID.String()).
		Int("quantity", req.StockQuantity).
		Msg("stock added")

	return id, nil
}

// UpdateInventory replaces an inventory record wholesale, unlike Stock
// which accumulates.
func (s *storeService) UpdateInventory(ctx context.Context, id uuid.UUID, req *model.UpdateInventoryRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "Update payload is required")
	}
	if req.StockQuantity < 0 {
		return model.ErrInvalidQuantity
	}

	expiry, err := time.Parse(expiryDateLayout, req.ExpiryDate)
	if err != nil {
		return model.NewDomainError(model.ErrCodeValidation, "Expiry date must be YYYY-MM-DD")
	}

	updated, err := s.inventoryRepo.Update(ctx, id, &model.UpdateInventoryParams{
		StockQuantity: req.StockQuantity,
		ExpiryDate:    expiry,
		Price:         req.Price,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("inventory_id", id.String()).Msg("failed to update inventory")
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	if !updated {
		return model.ErrInventoryNotFound
	}

	s.logger.Info().
		Str("inventory_id", id.String()).
		Int("quantity", req.StockQuantity).
		Bool("available", req.IsAvailable).
		Msg("inventory updated")

	return nil
}
