package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"
	"sort"
)

// recommendCollaborative scores cards bought by the customers whose
// purchase sets overlap the target's the most. A customer with no
// history delegates to popularity.
func (s *Service) recommendCollaborative(
	ctx context.Context,
	userID uint,
	limit int,
	cfg Config,
) ([]domain.ScoredCard, error) {
	ownLines, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}
	if len(ownLines) == 0 {
		return s.recommendPopular(ctx, limit)
	}

	ownSet := make(map[uint64]struct{}, len(ownLines))
	for _, line := range ownLines {
		ownSet[line.CardID] = struct{}{}
	}

	allLines, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	purchasesByUser := make(map[uint]map[uint64]struct{})
	for _, line := range allLines {
		other := uint(line.UserID)
		if other == userID {
			continue
		}
		if purchasesByUser[other] == nil {
			purchasesByUser[other] = make(map[uint64]struct{})
		}
		purchasesByUser[other][line.CardID] = struct{}{}
	}

	type neighbor struct {
		userID     uint
		similarity float64
	}

	neighbors := make([]neighbor, 0, len(purchasesByUser))
	for other, set := range purchasesByUser {
		sim := JaccardSimilarity(ownSet, set)
		if sim <= 0 {
			continue
		}
		neighbors = append(neighbors, neighbor{userID: other, similarity: sim})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].userID < neighbors[j].userID
	})

	maxNeighbors := cfg.MaxNeighbors
	if maxNeighbors <= 0 {
		maxNeighbors = defaultMaxNeighbors
	}
	if len(neighbors) > maxNeighbors {
		neighbors = neighbors[:maxNeighbors]
	}

	// accumulate neighbor similarity onto every card they bought that
	// the target has not
	candidateScores := make(map[uint64]float64)
	for _, n := range neighbors {
		for cardID := range purchasesByUser[n.userID] {
			if _, owned := ownSet[cardID]; owned {
				continue
			}
			candidateScores[cardID] += n.similarity
		}
	}

	if len(candidateScores) == 0 {
		return []domain.ScoredCard{}, nil
	}

	ownIDs := make([]uint64, 0, len(ownSet))
	for id := range ownSet {
		ownIDs = append(ownIDs, id)
	}

	inStock, err := s.cardRepo.FindInStock(ctx, ownIDs)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	scored := make([]domain.ScoredCard, 0, len(candidateScores))
	for _, card := range inStock {
		score, ok := candidateScores[card.ID]
		if !ok {
			continue
		}
		scored = append(scored, domain.ScoredCard{
			Card:    card,
			Score:   score,
			Reasons: []string{"customers with similar taste bought this"},
		})
	}

	sortScored(scored)

	return truncateScored(scored, limit), nil
}
