package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"

	"golang.org/x/sync/errgroup"
)

// recommendHybrid fans out the history, collaborative and popularity
// strategies concurrently, each asked for CandidateMultiplier×limit
// candidates, and fuses their scores under the configured weights. If
// one sub-strategy fails the whole fusion fails.
func (s *Service) recommendHybrid(
	ctx context.Context,
	userID uint,
	limit int,
	cfg Config,
) ([]domain.ScoredCard, error) {
	multiplier := cfg.CandidateMultiplier
	if multiplier <= 0 {
		multiplier = defaultCandidateMultiplier
	}
	subLimit := multiplier * limit

	var historyRecs, collabRecs, popularRecs []domain.ScoredCard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		historyRecs, err = s.recommendHistory(gctx, userID, subLimit)
		return err
	})
	g.Go(func() error {
		var err error
		collabRecs, err = s.recommendCollaborative(gctx, userID, subLimit, cfg)
		return err
	})
	g.Go(func() error {
		var err error
		popularRecs, err = s.recommendPopular(gctx, subLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("hybrid fusion: %w", err)
	}

	fused := make(map[uint64]*domain.ScoredCard)
	accumulate(fused, historyRecs, cfg.WHistory)
	accumulate(fused, collabRecs, cfg.WCollaborative)
	accumulate(fused, popularRecs, cfg.WPopularity)

	if len(fused) == 0 {
		return []domain.ScoredCard{}, nil
	}

	// keep only cards still in stock; read skew between the strategy
	// fetches and this one is tolerated
	inStock, err := s.cardRepo.FindInStock(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	scored := make([]domain.ScoredCard, 0, len(fused))
	for _, card := range inStock {
		entry, ok := fused[card.ID]
		if !ok {
			continue
		}
		entry.Card = card
		scored = append(scored, *entry)
	}

	sortScored(scored)

	return truncateScored(scored, limit), nil
}

// accumulate folds one strategy's output into the fusion map, adding
// score×weight and unioning reasons without duplicates.
func accumulate(fused map[uint64]*domain.ScoredCard, recs []domain.ScoredCard, weight float64) {
	for _, rec := range recs {
		entry, ok := fused[rec.Card.ID]
		if !ok {
			entry = &domain.ScoredCard{Card: rec.Card}
			fused[rec.Card.ID] = entry
		}
		entry.Score += rec.Score * weight
		entry.Reasons = mergeReasons(entry.Reasons, rec.Reasons)
	}
}

func mergeReasons(existing, incoming []string) []string {
	for _, reason := range incoming {
		dup := false
		for _, have := range existing {
			if have == reason {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, reason)
		}
	}
	return existing
}
