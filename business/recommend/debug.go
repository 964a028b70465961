package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DebugRecommend runs the same fan-out as the hybrid strategy but keeps
// the per-strategy raw and weighted scores visible per card.
func (s *Service) DebugRecommend(
	ctx context.Context,
	userID uint,
	limit int,
) ([]domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}

	cfg := s.loadConfig(ctx)

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

	rows := make(map[uint64]*domain.DebugRecommendation)
	row := func(id uint64) *domain.DebugRecommendation {
		r, ok := rows[id]
		if !ok {
			r = &domain.DebugRecommendation{CardID: id}
			rows[id] = r
		}
		return r
	}

	for _, rec := range historyRecs {
		r := row(rec.Card.ID)
		r.HistoryScore = rec.Score
		r.HistoryWeighted = rec.Score * cfg.WHistory
		r.AppearedInSignals++
	}
	for _, rec := range collabRecs {
		r := row(rec.Card.ID)
		r.CollabScore = rec.Score
		r.CollabWeighted = rec.Score * cfg.WCollaborative
		r.AppearedInSignals++
	}
	for _, rec := range popularRecs {
		r := row(rec.Card.ID)
		r.PopularityScore = rec.Score
		r.PopWeighted = rec.Score * cfg.WPopularity
		r.AppearedInSignals++
	}

	out := make([]domain.DebugRecommendation, 0, len(rows))
	for _, r := range rows {
		r.FinalScore = r.HistoryWeighted + r.CollabWeighted + r.PopWeighted
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return out[i].CardID < out[j].CardID
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
