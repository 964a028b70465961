package postgres

import (
	"context"
	"errors"
	"fmt"
	"myCardVault/domain"

	"gorm.io/gorm"
)

type CardRepository struct {
	DB *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{
		DB: db,
	}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

func (r *CardRepository) FindByID(ctx context.Context, id uint64) (domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return domain.Card{}, fmt.Errorf("context error: %w", err)
	}

	var card domain.Card

	err := r.DB.WithContext(ctx).First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Card{}, domain.ErrCardNotFound
		}
		return domain.Card{}, fmt.Errorf("failed to find card: %w", err)
	}

	return card, nil
}

func (r *CardRepository) FindAll(ctx context.Context) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cards []domain.Card
	err := r.DB.WithContext(ctx).Order("id").Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cards: %w", err)
	}

	return cards, nil
}

// FindInStock lists cards with stock > 0, optionally excluding ids.
func (r *CardRepository) FindInStock(ctx context.Context, exclude []uint64) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Where("stock > 0")
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	var cards []domain.Card
	err := query.Order("id").Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find in-stock cards: %w", err)
	}

	return cards, nil
}

func (r *CardRepository) Update(ctx context.Context, card *domain.Card) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"name":        card.Name,
		"card_type":   card.CardType,
		"rarity":      card.Rarity,
		"price":       card.Price,
		"stock":       card.Stock,
		"description": card.Description,
		"set_id":      card.SetID,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Card{}).Where("id = ?", card.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Card{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}
