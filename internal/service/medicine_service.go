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

// medicineService implements MedicineService.
type medicineService struct {
	medicineRepo repository.MedicineRepository
	logger       zerolog.Logger
}

// NewMedicineService creates a new medicine service.
func NewMedicineService(medicineRepo repository.MedicineRepository, logger zerolog.Logger) MedicineService {
	return &medicineService{
		medicineRepo: medicineRepo,
		logger:       logger.With().Str("service", "medicine").Logger(),
	}
}

// List retrieves all medicines.
func (s *medicineService) List(ctx context.Context) ([]model.Medicine, error) {
	meds, err := s.medicineRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list medicines")
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return meds, nil
}

// Get retrieves a single medicine.
func (s *medicineService) Get(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	med, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("medicine_id", id.String()).Msg("failed to get medicine")
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	if med == nil {
		return nil, model.ErrMedicineNotFound
	}
	return med, nil
}

// Add creates a new catalog entry.
func (s *medicineService) Add(ctx context.Context, req *model.MedicineRequest) (uuid.UUID, error) {
	if req == nil || req.Name == "" {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Medicine name is required")
	}
	if req.Price < 0 {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Price must not be negative")
	}

	med := &model.Medicine{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		CompanyName: req.Company,
		Composition: req.Composition,
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}

	if err := s.medicineRepo.Create(ctx, med); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create medicine")
		return uuid.Nil, fmt.Errorf("failed to create medicine: %w", err)
	}

	s.logger.Info().
		Str("medicine_id", med.ID.String()).
		Str("name", med.Name).
		Msg("medicine added")

	return med.ID, nil
}
