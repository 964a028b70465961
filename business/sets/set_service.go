package sets

import (
	"context"
	"errors"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
	"time"
)

// CardSetRepository contract interface
type CardSetRepository interface {
	Create(ctx context.Context, set *domain.CardSet) error
	FindByID(ctx context.Context, id uint64) (domain.CardSet, error)
	FindAll(ctx context.Context) ([]domain.CardSet, error)
	Update(ctx context.Context, set *domain.CardSet) error
	Delete(ctx context.Context, id uint64) error
}

type setService struct {
	setRepo CardSetRepository
}

func NewSetService(setRepo CardSetRepository) *setService {
	return &setService{
		setRepo: setRepo,
	}
}

func validateSet(set *domain.CardSet) error {
	if set.Name == "" {
		return errors.New("set name is required")
	}
	if set.Code == "" {
		return errors.New("set code is required")
	}
	if set.ReleaseYear < 1990 || set.ReleaseYear > time.Now().Year()+1 {
		return errors.New("invalid release year")
	}
	return nil
}

func (s *setService) CreateSet(ctx context.Context, set *domain.CardSet) error {
	if err := validateSet(set); err != nil {
		logger.Error("Invalid card set data", err)
		return err
	}

	if err := s.setRepo.Create(ctx, set); err != nil {
		logger.Error("Failed to create card set", err)
		return err
	}

	return nil
}

func (s *setService) GetSetByID(ctx context.Context, id uint64) (domain.CardSet, error) {
	set, err := s.setRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get card set", err)
		return domain.CardSet{}, err
	}

	return set, nil
}

func (s *setService) GetAllSets(ctx context.Context) ([]domain.CardSet, error) {
	list, err := s.setRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get card sets", err)
		return nil, err
	}

	return list, nil
}

func (s *setService) UpdateSet(ctx context.Context, set *domain.CardSet) error {
	if err := validateSet(set); err != nil {
		logger.Error("Invalid card set data", err)
		return err
	}

	if err := s.setRepo.Update(ctx, set); err != nil {
		logger.Error("Failed to update card set", err)
		return err
	}

	return nil
}

func (s *setService) DeleteSet(ctx context.Context, id uint64) error {
	if err := s.setRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete card set", err)
		return err
	}

	return nil
}
