package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"myCardVault/domain"
)

// recommendContent ranks in-stock cards by feature similarity to one
// reference card. A missing reference fails softly with an empty list.
func (s *Service) recommendContent(
	ctx context.Context,
	refCardID uint64,
	limit int,
) ([]domain.ScoredCard, error) {
	ref, err := s.cardRepo.FindByID(ctx, refCardID)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return []domain.ScoredCard{}, nil
		}
		return nil, fmt.Errorf("load reference card: %w", err)
	}

	candidates, err := s.cardRepo.FindInStock(ctx, []uint64{ref.ID})
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	refVec := buildFeatureVector(ref)

	scored := make([]domain.ScoredCard, 0, len(candidates))
	for _, card := range candidates {
		if card.ID == ref.ID {
			continue
		}

		vec := buildFeatureVector(card)
		sim := CosineSimilarity(refVec[:], vec[:])

		var reasons []string
		if card.CardType == ref.CardType {
			reasons = append(reasons, "same type")
		}
		if card.Rarity == ref.Rarity {
			reasons = append(reasons, "same rarity")
		}
		if math.Abs(card.Price-ref.Price) < 0.3*ref.Price {
			reasons = append(reasons, "similar price")
		}

		scored = append(scored, domain.ScoredCard{
			Card:    card,
			Score:   sim,
			Reasons: reasons,
		})
	}

	sortScored(scored)

	return truncateScored(scored, limit), nil
}
