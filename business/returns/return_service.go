package returns

import (
	"context"
	"errors"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
)

// ReturnsRepository contract interface
type ReturnsRepository interface {
	Create(ctx context.Context, ret *domain.Return) error
	FindByID(ctx context.Context, id uint) (domain.Return, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Return, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type OrdersRepository interface {
	FindByID(ctx context.Context, orderID int) (domain.Orders, error)
}

type returnService struct {
	returnRepo ReturnsRepository
	orderRepo  OrdersRepository
}

func NewReturnService(returnRepo ReturnsRepository, orderRepo OrdersRepository) *returnService {
	return &returnService{
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
	}
}

var validStatusTransitions = map[string]bool{
	domain.ReturnStatusApproved: true,
	domain.ReturnStatusRejected: true,
	domain.ReturnStatusRefunded: true,
}

// RequestReturn opens a return for an order line the customer owns.
func (s *returnService) RequestReturn(ctx context.Context, userID uint, orderID int, reason string) (domain.Return, error) {
	if reason == "" {
		return domain.Return{}, errors.New("return reason is required")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		logger.Error("Order not found for return", err)
		return domain.Return{}, err
	}
	if order.UserID != int(userID) {
		return domain.Return{}, domain.ErrOrderNotFound
	}

	ret := domain.Return{
		OrderID: orderID,
		UserID:  int(userID),
		Reason:  reason,
		Status:  domain.ReturnStatusRequested,
	}

	if err := s.returnRepo.Create(ctx, &ret); err != nil {
		logger.Error("Failed to create return", err)
		return domain.Return{}, err
	}

	return ret, nil
}

func (s *returnService) GetReturnsByUser(ctx context.Context, userID uint) ([]domain.Return, error) {
	rets, err := s.returnRepo.FindByUser(ctx, int(userID))
	if err != nil {
		logger.Error("Failed to get returns", err)
		return nil, err
	}

	return rets, nil
}

// UpdateStatus moves a requested return forward; admin only at the
// handler layer.
func (s *returnService) UpdateStatus(ctx context.Context, id uint, status string) (domain.Return, error) {
	if !validStatusTransitions[status] {
		return domain.Return{}, errors.New("invalid return status")
	}

	ret, err := s.returnRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Return{}, err
	}

	if ret.Status == domain.ReturnStatusRefunded {
		return domain.Return{}, errors.New("return already refunded")
	}

	if err := s.returnRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update return status", err)
		return domain.Return{}, err
	}

	ret.Status = status
	return ret, nil
}
