package postgres

import (
	"context"
	"errors"
	"fmt"
	"myCardVault/domain"

	"gorm.io/gorm"
)

type CardSetRepository struct {
	DB *gorm.DB
}

func NewCardSetRepository(db *gorm.DB) *CardSetRepository {
	return &CardSetRepository{
		DB: db,
	}
}

func (r *CardSetRepository) Create(ctx context.Context, set *domain.CardSet) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(set).Error; err != nil {
		return fmt.Errorf("failed to create card set: %w", err)
	}

	return nil
}

func (r *CardSetRepository) FindByID(ctx context.Context, id uint64) (domain.CardSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.CardSet{}, fmt.Errorf("context error: %w", err)
	}

	var set domain.CardSet
	err := r.DB.WithContext(ctx).First(&set, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CardSet{}, domain.ErrSetNotFound
		}
		return domain.CardSet{}, fmt.Errorf("failed to find card set: %w", err)
	}

	return set, nil
}

func (r *CardSetRepository) FindAll(ctx context.Context) ([]domain.CardSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sets []domain.CardSet
	err := r.DB.WithContext(ctx).Order("release_year DESC").Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find card sets: %w", err)
	}

	return sets, nil
}

func (r *CardSetRepository) Update(ctx context.Context, set *domain.CardSet) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.CardSet{}).Where("id = ?", set.ID).Updates(map[string]interface{}{
		"name":         set.Name,
		"code":         set.Code,
		"release_year": set.ReleaseYear,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update card set: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSetNotFound
	}

	return nil
}

func (r *CardSetRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.CardSet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete card set: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSetNotFound
	}

	return nil
}
