package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"
	"sort"
)

// recommendPopular ranks in-stock cards by total quantity sold across
// all historical order lines. With no sales anywhere it falls back to a
// static rarity-then-price ordering.
func (s *Service) recommendPopular(ctx context.Context, limit int) ([]domain.ScoredCard, error) {
	lines, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	soldByCard := make(map[uint64]int, len(lines))
	totalSold := 0
	for _, line := range lines {
		soldByCard[line.CardID] += line.Quantity
		totalSold += line.Quantity
	}

	cards, err := s.cardRepo.FindInStock(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	if totalSold == 0 {
		return truncateScored(staticPopularOrder(cards), limit), nil
	}

	scored := make([]domain.ScoredCard, 0, len(cards))
	for _, card := range cards {
		sold := soldByCard[card.ID]

		reason := "popular in catalog"
		if sold > 0 {
			reason = fmt.Sprintf("%d units sold", sold)
		}

		scored = append(scored, domain.ScoredCard{
			Card:    card,
			Score:   float64(sold),
			Reasons: []string{reason},
		})
	}

	sortScored(scored)

	return truncateScored(scored, limit), nil
}

// staticPopularOrder orders by rarity tier descending, price
// descending, id ascending.
func staticPopularOrder(cards []domain.Card) []domain.ScoredCard {
	scored := make([]domain.ScoredCard, 0, len(cards))
	for _, card := range cards {
		scored = append(scored, domain.ScoredCard{
			Card:    card,
			Score:   rarityRank(card.Rarity),
			Reasons: []string{"popular in catalog"},
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		ri, rj := rarityRank(scored[i].Card.Rarity), rarityRank(scored[j].Card.Rarity)
		if ri != rj {
			return ri > rj
		}
		if scored[i].Card.Price != scored[j].Card.Price {
			return scored[i].Card.Price > scored[j].Card.Price
		}
		return scored[i].Card.ID < scored[j].Card.ID
	})

	return scored
}
