package cards

import (
	"context"
	"errors"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
	"strings"
)

// CardRepository contract interface
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, id uint64) (domain.Card, error)
	FindAll(ctx context.Context) ([]domain.Card, error)
	FindInStock(ctx context.Context, exclude []uint64) ([]domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id uint64) error
}

type cardService struct {
	cardRepo CardRepository
}

func NewCardService(cardRepo CardRepository) *cardService {
	return &cardService{
		cardRepo: cardRepo,
	}
}

var validRarities = map[string]bool{
	"common":    true,
	"uncommon":  true,
	"rare":      true,
	"legendary": true,
	"mythic":    true,
	"secret":    true,
}

func validateCard(card *domain.Card) error {
	if card.Name == "" {
		return errors.New("card name is required")
	}
	if card.CardType == "" {
		return errors.New("card type is required")
	}
	if !validRarities[strings.ToLower(card.Rarity)] {
		return errors.New("invalid rarity")
	}
	if card.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if card.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}

func (s *cardService) CreateCard(ctx context.Context, card *domain.Card) error {
	if err := validateCard(card); err != nil {
		logger.Error("Invalid card data", err)
		return err
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		logger.Error("Failed to create card", err)
		return err
	}

	return nil
}

func (s *cardService) GetCardByID(ctx context.Context, id uint64) (domain.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get card", err)
		return domain.Card{}, err
	}

	return card, nil
}

func (s *cardService) GetAllCards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get cards", err)
		return nil, err
	}

	return cards, nil
}

func (s *cardService) UpdateCard(ctx context.Context, card *domain.Card) error {
	if err := validateCard(card); err != nil {
		logger.Error("Invalid card data", err)
		return err
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		logger.Error("Failed to update card", err)
		return err
	}

	return nil
}

func (s *cardService) DeleteCard(ctx context.Context, id uint64) error {
	if err := s.cardRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete card", err)
		return err
	}

	return nil
}
