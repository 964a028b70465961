package postgres

import (
	"context"
	"errors"
	"fmt"
	"myCardVault/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Create(&data).Error
	if err != nil {
		return domain.Orders{}, fmt.Errorf("failed to create order: %w", err)
	}

	return data, nil
}

// FindByUser returns a customer's order lines newest-first.
func (r *OrdersRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Orders
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindAll(ctx context.Context) ([]domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Orders
	err := r.DB.WithContext(ctx).Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, orderID int) (domain.Orders, error) {
	if err := ctx.Err(); err != nil {
		return domain.Orders{}, fmt.Errorf("context error: %w", err)
	}

	var order domain.Orders
	err := r.DB.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Orders{}, domain.ErrOrderNotFound
		}
		return domain.Orders{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func (r *OrdersRepository) UpdateOrder(ctx context.Context, data domain.Orders) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	row := r.DB.WithContext(ctx).Where("id = ?", data.ID).Updates(&data)
	if row.Error != nil {
		return fmt.Errorf("failed to update order: %w", row.Error)
	}
	if row.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

func (r *OrdersRepository) DeleteOrder(ctx context.Context, orderID int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	row := r.DB.WithContext(ctx).Where("id = ?", orderID).Delete(&domain.Orders{})
	if row.Error != nil {
		return fmt.Errorf("failed to delete order: %w", row.Error)
	}
	if row.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
