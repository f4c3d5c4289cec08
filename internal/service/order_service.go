package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"medimart/internal/model"
	"medimart/internal/notification"
	"medimart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// totalTolerance is the permitted drift between the client-declared
// order total and the sum recomputed from the line items.
const totalTolerance = 0.01

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	sender    notification.Sender
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	sender notification.Sender,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		sender:    sender,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder atomically creates an order with its items and empties the
// user's cart. The order row, every line item and the cart wipe commit
// together or not at all. A per-user advisory lock serializes
// concurrent checkouts so the cart cannot be cleared twice.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (uuid.UUID, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return uuid.Nil, err
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return uuid.Nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.AcquireUserLock(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to acquire checkout lock")
		return uuid.Nil, fmt.Errorf("failed to place order: %w", err)
	}

	order := &model.Order{
		ID:              uuid.New(),
		UserID:          userID,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		ContactNumber:   req.ContactNumber,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return uuid.Nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Items carry their request position so listings reproduce the
	// sequence the user submitted.
	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Ordinal:    i,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return uuid.Nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = s.cartRepo.ClearItemsTx(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to clear cart")
		return uuid.Nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return uuid.Nil, fmt.Errorf("failed to place order: %w", err)
	}

	// The order is committed; notification failure must not undo it.
	res := s.sender.Send(ctx, order.ContactNumber,
		notification.OrderPlacedMessage(order.ID, order.TotalAmount, order.CreatedAt))
	if !res.Success {
		s.logger.Warn().
			Str("order_id", order.ID.String()).
			Str("detail", res.Detail).
			Msg("order confirmation SMS not delivered")
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", userID.String()).
		Int("item_count", len(orderItems)).
		Float64("total_amount", order.TotalAmount).
		Msg("order placed successfully")

	return order.ID, nil
}

// ListOrders retrieves the user's orders with their items, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.OrderWithItems, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		return []model.OrderWithItems{}, nil
	}

	orderIDs := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	items, err := s.orderRepo.ListItems(ctx, orderIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list order items")
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	itemsByOrder := make(map[uuid.UUID][]model.OrderItemDetail, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	result := make([]model.OrderWithItems, len(orders))
	for i, o := range orders {
		result[i] = model.OrderWithItems{Order: o, Items: itemsByOrder[o.ID]}
		if result[i].Items == nil {
			result[i].Items = []model.OrderItemDetail{}
		}
	}

	return result, nil
}

// CancelOrder cancels a pending order owned by the user. A conditional
// update distinguishes the outcomes: when no row changes, the order is
// either missing, foreign, or already cancelled, and only the first two
// are errors.
func (s *orderService) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) (model.OrderStatus, error) {
	cancelled, err := s.orderRepo.MarkCancelled(ctx, orderID, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to cancel order")
		return "", fmt.Errorf("failed to cancel order: %w", err)
	}

	if !cancelled {
		order, err := s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to load order")
			return "", fmt.Errorf("failed to cancel order: %w", err)
		}
		if order == nil || order.UserID != userID {
			return "", model.ErrOrderNotFound
		}
		// Already cancelled or delivered; repeat cancels are no-ops.
		s.logger.Debug().
			Str("order_id", orderID.String()).
			Str("status", string(order.Status)).
			Msg("cancel had no effect")
		return order.Status, nil
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil || order == nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to load cancelled order")
		return model.OrderStatusCancelled, nil
	}

	res := s.sender.Send(ctx, order.ContactNumber, notification.OrderCancelledMessage(orderID))
	if !res.Success {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("detail", res.Detail).
			Msg("cancellation SMS not delivered")
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("user_id", userID.String()).
		Msg("order cancelled")

	return model.OrderStatusCancelled, nil
}

// validateOrderRequest validates the order request. The declared total
// is checked against the sum recomputed from the line items so the
// stored amount always matches what was actually ordered.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "Order request is required")
	}

	if len(req.Items) == 0 {
		return model.NewDomainError(model.ErrCodeValidation, "Order must contain at least one item")
	}

	if req.DeliveryAddress == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Delivery address is required")
	}

	if req.ContactNumber == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Contact number is required")
	}

	var computed float64
	for i, item := range req.Items {
		if item.MedicineID == uuid.Nil {
			return model.NewDomainError(model.ErrCodeValidation,
				fmt.Sprintf("Item %d: medicine ID is required", i))
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("medicine_id", item.MedicineID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.Price < 0 {
			return model.NewDomainError(model.ErrCodeValidation,
				fmt.Sprintf("Item %d: price must not be negative", i))
		}

		computed += float64(item.Quantity) * item.Price
	}

	if math.Abs(computed-req.TotalAmount) > totalTolerance {
		s.logger.Warn().
			Float64("declared_total", req.TotalAmount).
			Float64("computed_total", computed).
			Msg("order total mismatch")
		return model.ErrTotalMismatch
	}

	return nil
}
