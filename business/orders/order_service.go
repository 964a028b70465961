package orders

import (
	"context"
	"errors"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
)

const OrderStatusPending = "PENDING"

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Orders, error)
	FindByID(ctx context.Context, orderID int) (domain.Orders, error)
	UpdateOrder(ctx context.Context, data domain.Orders) error
	DeleteOrder(ctx context.Context, orderID int) error
}

type CardRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Card, error)
}

type orderService struct {
	orderRepo OrdersRepository
	cardRepo  CardRepository
}

func NewOrderService(orderRepo OrdersRepository, cardRepo CardRepository) *orderService {
	return &orderService{
		orderRepo: orderRepo,
		cardRepo:  cardRepo,
	}
}

// CreateOrder snapshots the card price into the line and marks it
// PENDING until payment.
func (s *orderService) CreateOrder(ctx context.Context, userID uint, cardID uint64, quantity int) (domain.Orders, error) {
	if quantity <= 0 {
		return domain.Orders{}, errors.New("quantity must be greater than zero")
	}

	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		logger.Error("Card not found for order", err)
		return domain.Orders{}, err
	}

	if card.Stock < quantity {
		return domain.Orders{}, errors.New("not enough stock")
	}

	order := domain.Orders{
		UserID:      int(userID),
		CardID:      cardID,
		Quantity:    quantity,
		PriceEach:   card.Price,
		Subtotal:    card.Price * float64(quantity),
		OrderStatus: OrderStatusPending,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to create order", err)
		return domain.Orders{}, err
	}

	return created, nil
}

func (s *orderService) GetOrdersByUser(ctx context.Context, userID uint) ([]domain.Orders, error) {
	ordersList, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return nil, err
	}

	return ordersList, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID uint, orderID int) (domain.Orders, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Orders{}, err
	}

	if order.UserID != int(userID) {
		return domain.Orders{}, domain.ErrOrderNotFound
	}

	return order, nil
}

// UpdateQuantity re-prices the line using its stored unit price.
func (s *orderService) UpdateQuantity(ctx context.Context, userID uint, orderID, quantity int) (domain.Orders, error) {
	if quantity <= 0 {
		return domain.Orders{}, errors.New("quantity must be greater than zero")
	}

	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return domain.Orders{}, err
	}

	order.Quantity = quantity
	order.Subtotal = order.PriceEach * float64(quantity)

	if err := s.orderRepo.UpdateOrder(ctx, order); err != nil {
		logger.Error("Failed to update order", err)
		return domain.Orders{}, err
	}

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID uint, orderID int) error {
	if _, err := s.GetOrder(ctx, userID, orderID); err != nil {
		return err
	}

	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		logger.Error("Failed to delete order", err)
		return err
	}

	return nil
}
