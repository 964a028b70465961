package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"
)

// customerProfile is a transient aggregate over one customer's purchase
// lines, computed fresh per request and never cached.
type customerProfile struct {
	purchased      map[uint64]struct{}
	typeFreq       map[string]int
	rarityFreq     map[string]int
	minPrice       float64
	maxPrice       float64
	favoriteType   string
	favoriteRarity string
}

// buildCustomerProfile scans purchase lines (with their card details)
// into frequency tables and a price band. Favorite ties resolve by
// first-encountered, then lexical, keeping the profile deterministic.
func (s *Service) buildCustomerProfile(
	ctx context.Context,
	lines []domain.Orders,
) (customerProfile, error) {
	profile := customerProfile{
		purchased:  make(map[uint64]struct{}, len(lines)),
		typeFreq:   make(map[string]int),
		rarityFreq: make(map[string]int),
		minPrice:   -1,
	}

	typeOrder := make(map[string]int)
	rarityOrder := make(map[string]int)

	for i, line := range lines {
		card, err := s.cardRepo.FindByID(ctx, line.CardID)
		if err != nil {
			// a missing card should not abort the whole profile
			continue
		}

		profile.purchased[line.CardID] = struct{}{}

		if _, seen := typeOrder[card.CardType]; !seen {
			typeOrder[card.CardType] = i
		}
		if _, seen := rarityOrder[card.Rarity]; !seen {
			rarityOrder[card.Rarity] = i
		}

		profile.typeFreq[card.CardType] += line.Quantity
		profile.rarityFreq[card.Rarity] += line.Quantity

		if profile.minPrice < 0 || line.PriceEach < profile.minPrice {
			profile.minPrice = line.PriceEach
		}
		if line.PriceEach > profile.maxPrice {
			profile.maxPrice = line.PriceEach
		}
	}

	if profile.minPrice < 0 {
		profile.minPrice = 0
	}

	profile.favoriteType = topEntry(profile.typeFreq, typeOrder)
	profile.favoriteRarity = topEntry(profile.rarityFreq, rarityOrder)

	return profile, nil
}

// topEntry picks the highest-count key; ties go to the one seen
// earliest, then lexically smallest.
func topEntry(freq map[string]int, firstSeen map[string]int) string {
	best := ""
	bestCount := -1
	for key, count := range freq {
		if count > bestCount {
			best, bestCount = key, count
			continue
		}
		if count == bestCount {
			if firstSeen[key] < firstSeen[best] ||
				(firstSeen[key] == firstSeen[best] && key < best) {
				best = key
			}
		}
	}
	return best
}

func (p customerProfile) purchasedIDs() []uint64 {
	ids := make([]uint64, 0, len(p.purchased))
	for id := range p.purchased {
		ids = append(ids, id)
	}
	return ids
}

// recommendHistory ranks unbought in-stock cards against the customer's
// inferred type/rarity/price-band preferences. No history delegates to
// popularity.
func (s *Service) recommendHistory(
	ctx context.Context,
	userID uint,
	limit int,
) ([]domain.ScoredCard, error) {
	lines, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}
	if len(lines) == 0 {
		return s.recommendPopular(ctx, limit)
	}

	profile, err := s.buildCustomerProfile(ctx, lines)
	if err != nil {
		return nil, err
	}
	if len(profile.purchased) == 0 {
		return s.recommendPopular(ctx, limit)
	}

	candidates, err := s.cardRepo.FindInStock(ctx, profile.purchasedIDs())
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	scored := make([]domain.ScoredCard, 0, len(candidates))
	for _, card := range candidates {
		if _, owned := profile.purchased[card.ID]; owned {
			continue
		}

		inBand := card.Price >= 0.7*profile.minPrice && card.Price <= 1.3*profile.maxPrice
		if card.CardType != profile.favoriteType &&
			card.Rarity != profile.favoriteRarity &&
			!inBand {
			continue
		}

		var score float64
		var reasons []string
		if card.CardType == profile.favoriteType {
			score += 3
			reasons = append(reasons, fmt.Sprintf("matches your favorite type %s", profile.favoriteType))
		}
		if card.Rarity == profile.favoriteRarity {
			score += 2
			reasons = append(reasons, fmt.Sprintf("matches your favorite rarity %s", profile.favoriteRarity))
		}
		if card.Price >= 0.8*profile.minPrice && card.Price <= 1.2*profile.maxPrice {
			score++
			reasons = append(reasons, "in your usual price range")
		}

		scored = append(scored, domain.ScoredCard{
			Card:    card,
			Score:   score,
			Reasons: reasons,
		})
	}

	sortScored(scored)

	return truncateScored(scored, limit), nil
}
