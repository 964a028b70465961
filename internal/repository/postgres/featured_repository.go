package postgres

import (
	"context"
	"fmt"
	"myCardVault/domain"

	"gorm.io/gorm"
)

type FeaturedRepository struct {
	DB *gorm.DB
}

func NewFeaturedRepository(db *gorm.DB) *FeaturedRepository {
	return &FeaturedRepository{DB: db}
}

// GetBySlot returns the curated picks of one rail, highest score first.
func (r *FeaturedRepository) GetBySlot(ctx context.Context, slot string, limit int) ([]domain.FeaturedCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var picks []domain.FeaturedCard
	query := r.DB.WithContext(ctx).
		Where("slot = ?", slot).
		Order("score DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&picks).Error; err != nil {
		return nil, fmt.Errorf("failed to find featured cards: %w", err)
	}

	return picks, nil
}

func (r *FeaturedRepository) Upsert(ctx context.Context, pick *domain.FeaturedCard) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Save(pick).Error; err != nil {
		return fmt.Errorf("failed to save featured card: %w", err)
	}

	return nil
}
