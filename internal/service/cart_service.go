package service

import (
	"context"
	"fmt"

	"medimart/internal/model"
	"medimart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo     repository.CartRepository
	medicineRepo repository.MedicineRepository
	logger       zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	medicineRepo repository.MedicineRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		medicineRepo: medicineRepo,
		logger:       logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart retrieves the user's cart with its items. Carts are created
// lazily, so a user who never added anything simply gets an empty
// response rather than an error.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if cart == nil {
		return &model.CartResponse{CartID: nil, Items: []model.CartItemDetail{}}, nil
	}

	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to list cart items")
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	return &model.CartResponse{CartID: &cart.ID, Items: items}, nil
}

// AddItem adds a medicine to the user's cart, creating the cart on
// first use.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.AddCartItemRequest) (uuid.UUID, error) {
	if req == nil || req.MedicineID == uuid.Nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Medicine ID is required")
	}
	if req.Quantity <= 0 {
		return uuid.Nil, model.ErrInvalidQuantity
	}

	med, err := s.medicineRepo.GetByID(ctx, req.MedicineID)
	if err != nil {
		s.logger.Error().Err(err).Str("medicine_id", req.MedicineID.String()).Msg("failed to look up medicine")
		return uuid.Nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if med == nil {
		return uuid.Nil, model.ErrMedicineNotFound
	}

	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get cart")
		return uuid.Nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	if cart == nil {
		cart, err = s.cartRepo.Create(ctx, userID)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create cart")
			return uuid.Nil, fmt.Errorf("failed to add cart item: %w", err)
		}
		s.logger.Debug().
			Str("cart_id", cart.ID.String()).
			Str("user_id", userID.String()).
			Msg("cart created")
	}

	// Price defaults to the catalog price so stale clients cannot
	// freeze an arbitrary value into the cart.
	price := req.Price
	if price <= 0 {
		price = med.Price
	}

	item := &model.CartItem{
		ID:         uuid.New(),
		CartID:     cart.ID,
		MedicineID: req.MedicineID,
		Quantity:   req.Quantity,
		Price:      price,
	}

	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("cart_id", cart.ID.String()).Msg("failed to add cart item")
		return uuid.Nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("cart_id", cart.ID.String()).
		Str("medicine_id", req.MedicineID.String()).
		Int("quantity", req.Quantity).
		Msg("item added to cart")

	return item.ID, nil
}

// UpdateItemQuantity changes the quantity of a cart item.
func (s *cartService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	updated, err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to update cart item")
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if !updated {
		return model.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes a cart item.
func (s *cartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	removed, err := s.cartRepo.RemoveItem(ctx, itemID)
	if err != nil {
		s.logger.Error().Err(err).Str("item_id", itemID.String()).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !removed {
		return model.ErrCartItemNotFound
	}

	return nil
}
