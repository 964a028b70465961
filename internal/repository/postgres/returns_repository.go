package postgres

import (
	"context"
	"errors"
	"fmt"
	"myCardVault/domain"

	"gorm.io/gorm"
)

type ReturnsRepository struct {
	DB *gorm.DB
}

func NewReturnsRepository(db *gorm.DB) *ReturnsRepository {
	return &ReturnsRepository{
		DB: db,
	}
}

func (r *ReturnsRepository) Create(ctx context.Context, ret *domain.Return) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(ret).Error; err != nil {
		return fmt.Errorf("failed to create return: %w", err)
	}

	return nil
}

func (r *ReturnsRepository) FindByID(ctx context.Context, id uint) (domain.Return, error) {
	if err := ctx.Err(); err != nil {
		return domain.Return{}, fmt.Errorf("context error: %w", err)
	}

	var ret domain.Return
	err := r.DB.WithContext(ctx).First(&ret, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Return{}, domain.ErrReturnNotFound
		}
		return domain.Return{}, fmt.Errorf("failed to find return: %w", err)
	}

	return ret, nil
}

func (r *ReturnsRepository) FindByUser(ctx context.Context, userID int) ([]domain.Return, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var returns []domain.Return
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&returns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find returns: %w", err)
	}

	return returns, nil
}

func (r *ReturnsRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Return{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update return status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReturnNotFound
	}

	return nil
}
