package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
	"myCardVault/pkg/metrics"
	"sort"
	"strings"
)

// recommendGenerative asks the generative collaborator to pick card ids
// for the shopper. The model output is advisory: ids are validated
// against the real candidate set, every parse failure degrades through
// name matching and a rarity ordering, and a transport failure falls
// back to the hybrid strategy entirely. The caller never sees a
// generative error.
func (s *Service) recommendGenerative(
	ctx context.Context,
	userID uint,
	limit int,
	cfg Config,
) ([]domain.ScoredCard, error) {
	lines, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}

	purchased := make([]uint64, 0, len(lines))
	purchasedSet := make(map[uint64]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := purchasedSet[line.CardID]; ok {
			continue
		}
		purchasedSet[line.CardID] = struct{}{}
		purchased = append(purchased, line.CardID)
	}

	candidates, err := s.cardRepo.FindInStock(ctx, purchased)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if len(candidates) == 0 {
		return []domain.ScoredCard{}, nil
	}

	maxCandidates := cfg.MaxPromptCandidates
	if maxCandidates <= 0 {
		maxCandidates = defaultMaxPromptCandidates
	}
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	hasHistory := len(lines) > 0
	prompt := s.buildRecommendPrompt(ctx, userID, lines, candidates, limit, cfg)

	if s.completer == nil {
		return s.generativeFallback(ctx, userID, limit, cfg, "no completer configured")
	}

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return s.generativeFallback(ctx, userID, limit, cfg, err.Error())
	}

	ids := s.resolveIDs(raw, candidates, limit)

	byID := make(map[uint64]domain.Card, len(candidates))
	for _, card := range candidates {
		byID[card.ID] = card
	}

	reasons := []string{"personalized AI recommendation"}
	if hasHistory {
		reasons = append(reasons, "based on your purchase history")
	} else {
		reasons = append(reasons, "picked for new customers")
	}

	picked := make(map[uint64]struct{}, limit)
	scored := make([]domain.ScoredCard, 0, limit)
	for _, id := range ids {
		if len(scored) >= limit {
			break
		}
		card, ok := byID[id]
		if !ok {
			continue
		}
		picked[id] = struct{}{}
		scored = append(scored, domain.ScoredCard{
			Card:    card,
			Score:   float64(limit - len(scored)),
			Reasons: reasons,
		})
	}

	// backfill a short result from the hybrid ranking
	if len(scored) < limit {
		hybrid, err := s.recommendHybrid(ctx, userID, limit, cfg)
		if err != nil {
			logger.Warn("hybrid backfill failed", "error", err)
			return scored, nil
		}
		for _, rec := range hybrid {
			if len(scored) >= limit {
				break
			}
			if _, dup := picked[rec.Card.ID]; dup {
				continue
			}
			picked[rec.Card.ID] = struct{}{}
			scored = append(scored, rec)
		}
	}

	return scored, nil
}

// resolveIDs runs the extraction cascade, then the name-match fallback,
// then the rarity-descending fallback.
func (s *Service) resolveIDs(raw string, candidates []domain.Card, limit int) []uint64 {
	candidateSet := make(map[uint64]struct{}, len(candidates))
	for _, card := range candidates {
		candidateSet[card.ID] = struct{}{}
	}

	ids := extractCandidateIDs(raw, candidateSet)
	if len(ids) == 0 {
		ids = matchNamesInText(raw, candidates)
	}
	if len(ids) == 0 {
		ids = rarityFallback(candidates, limit)
	}

	return ids
}

// rarityFallback orders candidates by rarity tier descending and takes
// the top limit ids.
func rarityFallback(candidates []domain.Card, limit int) []uint64 {
	sorted := make([]domain.Card, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		ri, rj := rarityRank(sorted[i].Rarity), rarityRank(sorted[j].Rarity)
		if ri != rj {
			return ri > rj
		}
		return sorted[i].ID < sorted[j].ID
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ids := make([]uint64, 0, len(sorted))
	for _, card := range sorted {
		ids = append(ids, card.ID)
	}
	return ids
}

func (s *Service) generativeFallback(
	ctx context.Context,
	userID uint,
	limit int,
	cfg Config,
	cause string,
) ([]domain.ScoredCard, error) {
	logger.Warn("generative recommendation fell back to hybrid", "cause", cause, "user_id", userID)
	metrics.GenerativeFallbacks.Inc()

	return s.recommendHybrid(ctx, userID, limit, cfg)
}

// buildRecommendPrompt embeds the customer's recent purchases and the
// candidate catalog rows, and pins the expected output format.
func (s *Service) buildRecommendPrompt(
	ctx context.Context,
	userID uint,
	lines []domain.Orders,
	candidates []domain.Card,
	limit int,
	cfg Config,
) string {
	var b strings.Builder

	b.WriteString("You are a trading card shop assistant picking cards for a customer.\n\n")

	name := ""
	if s.userRepo != nil && userID != 0 {
		if user, err := s.userRepo.FindByID(ctx, userID); err == nil {
			name = user.FullName
		}
	}

	maxHistory := cfg.MaxPromptHistory
	if maxHistory <= 0 {
		maxHistory = defaultMaxPromptHistory
	}

	if len(lines) == 0 {
		b.WriteString("Customer: new customer, no purchase history.\n")
	} else {
		if name != "" {
			fmt.Fprintf(&b, "Customer: %s\n", name)
		} else {
			b.WriteString("Customer: returning customer.\n")
		}
		b.WriteString("Recent purchases:\n")
		for i, line := range lines {
			if i >= maxHistory {
				break
			}
			fmt.Fprintf(&b, "- card %d x%d at %.2f\n", line.CardID, line.Quantity, line.PriceEach)
		}
	}

	b.WriteString("\nAvailable cards (id | name | type | rarity | price | stock):\n")
	for _, card := range candidates {
		fmt.Fprintf(&b, "%d | %s | %s | %s | %.2f | %d\n",
			card.ID, card.Name, card.CardType, card.Rarity, card.Price, card.Stock)
	}

	fmt.Fprintf(&b,
		"\nPick the %d best cards for this customer from the list above.\n"+
			"Answer with exactly one line in the form \"IDs: id1,id2,...\" using %d numeric ids and no other text.\n",
		limit, limit)

	return b.String()
}
