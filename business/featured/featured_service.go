package featured

import (
	"context"
	"errors"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
)

// FeaturedRepository contract interface
type FeaturedRepository interface {
	GetBySlot(ctx context.Context, slot string, limit int) ([]domain.FeaturedCard, error)
	Upsert(ctx context.Context, pick *domain.FeaturedCard) error
}

type CardRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Card, error)
}

type featuredService struct {
	featuredRepo FeaturedRepository
	cardRepo     CardRepository
}

func NewFeaturedService(featuredRepo FeaturedRepository, cardRepo CardRepository) *featuredService {
	return &featuredService{
		featuredRepo: featuredRepo,
		cardRepo:     cardRepo,
	}
}

// GetSlot resolves a curated rail into scored cards. Picks whose card
// no longer exists or is out of stock are skipped.
func (s *featuredService) GetSlot(ctx context.Context, slot string, limit int) ([]domain.ScoredCard, error) {
	if slot == "" {
		return nil, errors.New("slot is required")
	}
	if limit <= 0 {
		limit = 10
	}

	picks, err := s.featuredRepo.GetBySlot(ctx, slot, limit*2)
	if err != nil {
		logger.Error("Failed to get featured picks", err)
		return nil, err
	}

	out := make([]domain.ScoredCard, 0, limit)
	for _, pick := range picks {
		if len(out) >= limit {
			break
		}

		card, err := s.cardRepo.FindByID(ctx, pick.CardID)
		if err != nil || card.Stock <= 0 {
			continue
		}

		out = append(out, domain.ScoredCard{
			Card:    card,
			Score:   pick.Score,
			Reasons: []string{"featured pick"},
		})
	}

	return out, nil
}

func (s *featuredService) UpsertPick(ctx context.Context, pick *domain.FeaturedCard) error {
	if pick.Slot == "" {
		return errors.New("slot is required")
	}

	if _, err := s.cardRepo.FindByID(ctx, pick.CardID); err != nil {
		return err
	}

	if err := s.featuredRepo.Upsert(ctx, pick); err != nil {
		logger.Error("Failed to save featured pick", err)
		return err
	}

	return nil
}
